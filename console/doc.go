// Package console wraps the Win32 console devices the decoder collaborates
// with: the input buffer that supplies raw records and the screen buffer that
// answers the live terminal-size query.
//
// A *Console implements record.SizeProvider, so it plugs straight into
// record.Decode for resize correction. ReadInput and PeekInput fill []record.Raw
// directly from ReadConsoleInputW/PeekConsoleInputW; looping, queueing and key
// translation are left to the caller.
//
// On platforms without a Win32 console every operation returns ErrUnsupported,
// which keeps dependents compiling and testing everywhere.
package console
