package datetime

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts matching the canonical value and its halves, usable with time.Parse.
const (
	Layout     = "2006-01-02 15:04:05"
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Upper bounds applied by Clamp. Both bounds are inclusive.
const (
	MaxHours   = 24
	MaxMinutes = 60
	MaxSeconds = 60
)

const placeholder = "00"

var canonicalPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} (\d{2}:){2}\d{2}$`)

// Value is the structured form of the canonical string. Every field holds a
// zero-padded decimal string; an empty field marks a sub-part that is not
// enabled and is therefore left out of the canonical string.
type Value struct {
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
	Hours   string `json:"hours,omitempty" yaml:"hours,omitempty"`
	Minutes string `json:"minutes,omitempty" yaml:"minutes,omitempty"`
	Seconds string `json:"seconds,omitempty" yaml:"seconds,omitempty"`
}

// IsCanonical reports whether text has exactly the YYYY-MM-DD HH:MM:SS shape.
// It is a lexical check only: "2023-02-30 99:99:99" passes.
func IsCanonical(text string) bool {
	return canonicalPattern.MatchString(text)
}

// Parse reads a canonical string by fixed character offsets and normalizes it
// through the calendar, so "2023-02-30 10:00:00" becomes 2023-03-02. The text
// is trimmed first and must then pass IsCanonical.
func Parse(text string) (Value, error) {
	return ParseInLocation(text, time.Local)
}

// ParseInLocation is Parse with an explicit location for the calendar
// normalization step.
func ParseInLocation(text string, loc *time.Location) (Value, error) {
	text = strings.TrimSpace(text)
	if !IsCanonical(text) {
		return Value{}, fmt.Errorf("%w: %q", ErrNotCanonical, text)
	}
	if loc == nil {
		loc = time.Local
	}

	year := digits(text[0:4])
	month := digits(text[5:7])
	day := digits(text[8:10])
	hours := digits(text[11:13])
	minutes := digits(text[14:16])
	seconds := digits(text[17:19])

	t := time.Date(year, time.Month(month), day, hours, minutes, seconds, 0, loc)
	return FromTime(t), nil
}

// Now snapshots the current local time.
func Now() Value {
	return NowFunc(time.Now)
}

// NowFunc snapshots the time returned by clock, falling back to time.Now.
func NowFunc(clock func() time.Time) Value {
	if clock == nil {
		clock = time.Now
	}
	return FromTime(clock())
}

// FromTime converts t into a fully populated, zero-padded Value.
func FromTime(t time.Time) Value {
	return Value{
		Date:    PadInt(t.Year(), 4) + "-" + PadInt(int(t.Month()), 2) + "-" + PadInt(t.Day(), 2),
		Hours:   PadInt(t.Hour(), 2),
		Minutes: PadInt(t.Minute(), 2),
		Seconds: PadInt(t.Second(), 2),
	}
}

// Format serializes v as HH:MM:SS, prefixed by "date " when includeDate is
// set. Missing time fields are written as "00" so the result is always a
// complete time.
func (v Value) Format(includeDate bool) string {
	out := timePart(v.Hours) + ":" + timePart(v.Minutes) + ":" + timePart(v.Seconds)
	if includeDate {
		out = v.Date + " " + out
	}
	return out
}

// Time converts a value that carries a date into a time.Time in loc.
func (v Value) Time(loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(v.Date) == "" {
		return time.Time{}, ErrIncompleteValue
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(Layout, v.Format(true), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("datetime: convert %q: %w", v.Format(true), err)
	}
	return t, nil
}

// Part returns the field backing part.
func (v Value) Part(part Part) string {
	switch part {
	case PartDate:
		return v.Date
	case PartHours:
		return v.Hours
	case PartMinutes:
		return v.Minutes
	case PartSeconds:
		return v.Seconds
	default:
		return ""
	}
}

// WithPart returns a copy of v with part set to value.
func (v Value) WithPart(part Part, value string) Value {
	switch part {
	case PartDate:
		v.Date = value
	case PartHours:
		v.Hours = value
	case PartMinutes:
		v.Minutes = value
	case PartSeconds:
		v.Seconds = value
	}
	return v
}

// Clamp coerces hours into [0, MaxHours] and minutes/seconds into
// [0, MaxMinutes]/[0, MaxSeconds]. Out of range fields are replaced by the
// bound written without padding ("60", "0"). Empty and non-numeric fields are
// left alone, as is the date. The returned slice lists the rewritten parts.
func Clamp(v Value) (Value, []Part) {
	var changed []Part
	for _, part := range TimeParts() {
		raw := v.Part(part)
		if raw == "" {
			continue
		}
		bounded, ok := clampPart(part, raw)
		if !ok {
			continue
		}
		v = v.WithPart(part, bounded)
		changed = append(changed, part)
	}
	return v, changed
}

// Bounds returns the inclusive range enforced on part. The date part has no
// bounds and reports ok=false.
func Bounds(part Part) (lo, hi int, ok bool) {
	switch part {
	case PartHours:
		return 0, MaxHours, true
	case PartMinutes:
		return 0, MaxMinutes, true
	case PartSeconds:
		return 0, MaxSeconds, true
	default:
		return 0, 0, false
	}
}

func clampPart(part Part, raw string) (string, bool) {
	lo, hi, ok := Bounds(part)
	if !ok {
		return "", false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) {
		return "", false
	}
	switch {
	case n > float64(hi):
		return strconv.Itoa(hi), true
	case n < float64(lo):
		return strconv.Itoa(lo), true
	default:
		return "", false
	}
}

// Pad left-pads s with '0' up to width. Longer strings are returned as is.
func Pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// PadInt formats v in base 10 and pads it to width.
func PadInt(v, width int) string {
	return Pad(strconv.Itoa(v), width)
}

func timePart(raw string) string {
	if raw == "" {
		return placeholder
	}
	return Pad(raw, 2)
}

// digits converts a slot already validated by canonicalPattern.
func digits(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
