package datetime

import "fmt"

// Fields is the host side of a Picker: the sub-part inputs plus the backing
// field that stores the canonical string (PartValue). Get returns "" for a
// field the host does not have.
type Fields interface {
	Get(part Part) string
	Set(part Part, value string)
}

// ChangeNotifier is implemented by Fields that propagate change notifications
// to their own listeners. Sync calls it for the backing field when
// TriggerHandler is enabled.
type ChangeNotifier interface {
	NotifyChange(part Part, value string)
}

// Picker keeps the sub-part fields of one form field and its backing field in
// sync. A Picker is owned by the form field that created it and is not safe
// for concurrent use.
type Picker struct {
	opts   Options
	fields Fields
	value  Value
}

// New validates the options and snapshots the initial value: the backing
// field is parsed when it holds a canonical string, otherwise the picker
// starts at the current time.
func New(fields Fields, fns ...OptionFn) (*Picker, error) {
	if fields == nil {
		return nil, fmt.Errorf("datetime: fields are required")
	}
	opts := NewOptions(fns...)
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	p := &Picker{opts: opts, fields: fields}
	if raw := fields.Get(PartValue); IsCanonical(raw) {
		value, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		p.value = value
	} else {
		p.value = NowFunc(opts.Clock)
	}
	return p, nil
}

// Options returns the picker configuration.
func (p *Picker) Options() Options {
	return p.opts
}

// Value returns the latest snapshot. Parts that are not enabled keep the
// values from the initial snapshot.
func (p *Picker) Value() Value {
	return p.value
}

// Show seeds every enabled sub-part from the snapshot and syncs the backing
// field.
func (p *Picker) Show() string {
	for _, part := range p.opts.EnabledParts() {
		p.fields.Set(part, p.value.Part(part))
	}
	return p.Sync()
}

// Get reads the enabled sub-parts. Disabled parts are left empty.
func (p *Picker) Get() Value {
	var out Value
	for _, part := range p.opts.EnabledParts() {
		out = out.WithPart(part, p.fields.Get(part))
	}
	return out
}

// Validate clamps the enabled time parts and writes the bound back into each
// out of range field. It returns the parts that were rewritten.
func (p *Picker) Validate() []Part {
	clamped, changed := Clamp(p.Get())
	for _, part := range changed {
		p.fields.Set(part, clamped.Part(part))
	}
	return changed
}

// Sync writes the canonical string for the current sub-parts into the backing
// field and returns it.
func (p *Picker) Sync() string {
	current := p.Get()
	canonical := current.Format(p.opts.IncludeDate())
	p.fields.Set(PartValue, canonical)

	if p.opts.TriggerHandler {
		if notifier, ok := p.fields.(ChangeNotifier); ok {
			notifier.NotifyChange(PartValue, canonical)
		}
	}

	for _, part := range p.opts.EnabledParts() {
		raw := current.Part(part)
		if part != PartDate {
			raw = timePart(raw)
		}
		p.value = p.value.WithPart(part, raw)
	}
	return canonical
}

// OnFieldsChanged handles an edit of any sub-part: clamp when ValidateBounds
// is set, sync, then call OnChange.
func (p *Picker) OnFieldsChanged() string {
	if p.opts.ValidateBounds {
		p.Validate()
	}
	canonical := p.Sync()
	if p.opts.OnChange != nil {
		p.opts.OnChange(canonical)
	}
	return canonical
}
