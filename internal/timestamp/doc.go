// Package timestamp renders the current local time as a fixed-pattern
// timestamp string used to tag pipeline runs and their artifacts.
//
// Every value has the form:
//
//	TS<YYYYMMDD>.<HHMMSS>
//
// with a literal "TS" prefix, the local calendar date, a literal ".", and the
// local time of day on a 24-hour clock. All fields are zero-padded, so the
// string is always exactly 17 characters long. Resolution is one second:
// fractional seconds are truncated, and two calls within the same wall-clock
// second return the same string.
//
// The local system timezone is always used. There is no parsing counterpart.
//
// Example usage:
//
//	fmt.Println(timestamp.Timestamp()) // TS20230305.140709
//
//	// Deterministic output with an injected clock
//	gen := timestamp.NewGenerator(clock.Fixed{T: t})
//	fmt.Println(gen.Now())
package timestamp
