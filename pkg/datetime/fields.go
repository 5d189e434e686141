package datetime

// MapFields is an in-memory Fields implementation. Listener, when set,
// receives every change notification raised by a Picker.
type MapFields struct {
	values   map[Part]string
	Listener func(part Part, value string)
}

var (
	_ Fields         = (*MapFields)(nil)
	_ ChangeNotifier = (*MapFields)(nil)
)

// NewMapFields returns fields whose backing value is set to value.
func NewMapFields(value string) *MapFields {
	f := &MapFields{values: make(map[Part]string)}
	if value != "" {
		f.values[PartValue] = value
	}
	return f
}

func (f *MapFields) Get(part Part) string {
	if f == nil || f.values == nil {
		return ""
	}
	return f.values[part]
}

func (f *MapFields) Set(part Part, value string) {
	if f == nil {
		return
	}
	if f.values == nil {
		f.values = make(map[Part]string)
	}
	f.values[part] = value
}

func (f *MapFields) NotifyChange(part Part, value string) {
	if f == nil || f.Listener == nil {
		return
	}
	f.Listener(part, value)
}

// Snapshot returns a copy of the stored fields.
func (f *MapFields) Snapshot() map[Part]string {
	if f == nil || len(f.values) == 0 {
		return nil
	}
	out := make(map[Part]string, len(f.values))
	for part, value := range f.values {
		out[part] = value
	}
	return out
}
