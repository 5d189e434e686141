package datetimepicker

import (
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-datetimefield/pkg/datetime"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// FieldName returns the form input name for part of the field called name.
// The backing value uses name itself.
func FieldName(name string, part datetime.Part) string {
	if part == datetime.PartValue {
		return name
	}
	return name + "[" + string(part) + "]"
}

// formFields adapts submitted url.Values to datetime.Fields. Parts written
// while recording are remembered so clamped inputs can be reported.
type formFields struct {
	name      string
	values    url.Values
	sanitize  bool
	recording bool
	rewritten []datetime.Part
}

var _ datetime.Fields = (*formFields)(nil)

func newFormFields(name string, values url.Values, sanitize bool) *formFields {
	clone := make(url.Values, len(values))
	for key, entries := range values {
		clone[key] = append([]string(nil), entries...)
	}
	return &formFields{name: name, values: clone, sanitize: sanitize}
}

func (f *formFields) Get(part datetime.Part) string {
	raw := strings.TrimSpace(f.values.Get(FieldName(f.name, part)))
	if !f.sanitize || raw == "" {
		return raw
	}
	return strings.TrimSpace(sanitizer().Sanitize(raw))
}

func (f *formFields) Set(part datetime.Part, value string) {
	f.values.Set(FieldName(f.name, part), value)
	if f.recording && part != datetime.PartValue {
		f.rewritten = append(f.rewritten, part)
	}
}

func (f *formFields) has(part datetime.Part) bool {
	_, ok := f.values[FieldName(f.name, part)]
	return ok
}

func sanitizer() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
