// Package coord provides the shared cell-coordinate value types.
//
// Console positions and sizes are measured in character cells, not pixels.
// Both types mirror the 16-bit signed fields of the Win32 COORD structure so
// they can hold any value the console subsystem reports.
package coord
