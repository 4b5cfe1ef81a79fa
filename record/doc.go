// Package record decodes raw Win32 console input records into typed events.
//
// The console subsystem delivers input as INPUT_RECORD values: a 16-bit
// discriminant followed by a union whose active arm depends on that
// discriminant. This package is the one place where the union is interpreted:
//
//   - Raw holds the untouched record image as delivered by the OS.
//   - Decode inspects the discriminant and routes to the matching arm reader,
//     producing one of the five typed records (KeyEventRecord, MouseEvent,
//     WindowBufferSizeRecord, FocusEventRecord, MenuEventRecord) wrapped in
//     the InputRecord union.
//   - The bitmask fields (ButtonState, ControlKeyState, EventFlags) are
//     wrapped in value types with named predicates instead of raw bit tests.
//
// Flag and enum decoding is total: any bit pattern maps to a defined value.
// Only two things can fail: a discriminant outside the five known event kinds
// (the payload shape is unknown, so guessing would read the wrong arm), and
// the live terminal-size query made while decoding a resize record.
//
// Decoding copies everything out of the raw record. A decoded record never
// aliases the Raw it came from and holds no state between calls.
package record
