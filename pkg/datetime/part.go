package datetime

import (
	"fmt"
	"strings"
)

// Part names one of the fields a Picker reads or writes.
type Part string

const (
	PartDate    Part = "date"
	PartHours   Part = "hours"
	PartMinutes Part = "minutes"
	PartSeconds Part = "seconds"

	// PartValue is the backing field holding the canonical string.
	PartValue Part = "value"
)

// Parts lists the editable sub-parts in display order.
func Parts() []Part {
	return []Part{PartDate, PartHours, PartMinutes, PartSeconds}
}

// TimeParts lists the numeric sub-parts subject to Clamp.
func TimeParts() []Part {
	return []Part{PartHours, PartMinutes, PartSeconds}
}

// Label returns the display label for part.
func (p Part) Label() string {
	switch p {
	case PartDate:
		return "Date"
	case PartHours:
		return "Hours"
	case PartMinutes:
		return "Minutes"
	case PartSeconds:
		return "Seconds"
	case PartValue:
		return "Value"
	default:
		return string(p)
	}
}

// ParsePart resolves a sub-part name, ignoring case and surrounding space.
func ParsePart(raw string) (Part, error) {
	switch Part(strings.ToLower(strings.TrimSpace(raw))) {
	case PartDate:
		return PartDate, nil
	case PartHours:
		return PartHours, nil
	case PartMinutes:
		return PartMinutes, nil
	case PartSeconds:
		return PartSeconds, nil
	default:
		return "", fmt.Errorf("datetime: unknown part %q", raw)
	}
}

// ParseParts resolves a comma separated list such as "date,hours".
// Empty entries are skipped and duplicates collapse.
func ParseParts(raw string) ([]Part, error) {
	var out []Part
	seen := make(map[Part]struct{})
	for _, entry := range strings.Split(raw, ",") {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		part, err := ParsePart(entry)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out, nil
}
