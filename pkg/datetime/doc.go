// Package datetime models the value behind a composite date/time form field.
//
// A field is edited as four sub-parts (date, hours, minutes, seconds) while a
// single backing field carries the canonical string:
//
//	2023-05-01 13:45:09
//
// The date prefix is dropped when the date part is disabled. The package
// covers the shape check, parsing, serialization, and bounds clamping of that
// value, plus Picker, which keeps the sub-part fields and the backing field in
// sync for one form field. Rendering and event dispatch belong to the caller:
// anything that implements Fields can host a Picker.
package datetime
