package openapi

import (
	"errors"
	"strings"

	"github.com/goliatone/go-datetimefield/pkg/datetime"
)

// Document wraps a raw OpenAPI payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document, copying raw.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Formats recognised as date/time fields.
const (
	FormatDateTime = "date-time"
	FormatDate     = "date"
	FormatTime     = "time"
)

// Binding describes one request body property that should be edited with a
// datetime picker. FieldPath uses dots for nested objects and "[]" for array
// items, e.g. "schedule.slots[].starts_at".
type Binding struct {
	OperationID string `json:"operationId"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	FieldPath   string `json:"fieldPath"`
	Format      string `json:"format"`
	Required    bool   `json:"required,omitempty"`
	Description string `json:"description,omitempty"`
}

// NormalizeFormat maps format spellings onto FormatDateTime, FormatDate or
// FormatTime. Unknown formats return "".
func NormalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "date-time", "datetime", "datetime-local":
		return FormatDateTime
	case "date":
		return FormatDate
	case "time":
		return FormatTime
	default:
		return ""
	}
}

// Parts returns the picker parts matching the binding format.
func (b Binding) Parts() []datetime.Part {
	switch NormalizeFormat(b.Format) {
	case FormatDate:
		return []datetime.Part{datetime.PartDate}
	case FormatTime:
		return datetime.TimeParts()
	default:
		return datetime.Parts()
	}
}

// OptionFns returns picker options for the binding: the field path as name
// and the parts that fit the format.
func (b Binding) OptionFns() []datetime.OptionFn {
	fns := []datetime.OptionFn{datetime.WithName(b.FieldName())}
	if NormalizeFormat(b.Format) == FormatDateTime {
		return append(fns, datetime.WithShowAll(true))
	}
	return append(fns, datetime.WithParts(b.Parts()...))
}

// FieldName returns FieldPath without array markers, suitable as a form field
// name.
func (b Binding) FieldName() string {
	return strings.ReplaceAll(b.FieldPath, "[]", "")
}
