package datetime

import (
	"strings"
	"time"
)

// ChangeFunc is invoked with the canonical value after every sync triggered
// by OnFieldsChanged.
type ChangeFunc func(value string)

// Options configures a Picker. The zero value disables every sub-part; use
// DefaultOptions or NewOptions to start from the documented defaults.
type Options struct {
	// Name is the backing field name used by form hosts.
	Name string

	// ShowAll enables every sub-part and overrides the individual toggles.
	ShowAll     bool
	ShowDate    bool
	ShowHours   bool
	ShowMinutes bool
	ShowSeconds bool

	// ShowTimeZone is accepted for compatibility. Values carry no zone and the
	// flag is not interpreted.
	ShowTimeZone bool

	OnChange ChangeFunc

	// TriggerHandler forwards a change notification for the backing field
	// after each sync when the Fields implementation supports it.
	TriggerHandler bool

	// ValidateBounds clamps time parts before each sync.
	ValidateBounds bool

	// Clock supplies "now" when no canonical value is present.
	Clock func() time.Time
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		ShowAll:        true,
		ShowTimeZone:   true,
		TriggerHandler: true,
		ValidateBounds: true,
		Clock:          time.Now,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	opts.Name = strings.TrimSpace(opts.Name)
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return opts
}

// Validate checks the configuration. It returns a *ConfigError.
func (o Options) Validate() error {
	if strings.ContainsAny(o.Name, "[]") {
		return &ConfigError{Field: "name", Reason: "must not contain brackets"}
	}
	return nil
}

// Enabled reports whether part is shown and read by a Picker.
func (o Options) Enabled(part Part) bool {
	if o.ShowAll {
		return part != PartValue
	}
	switch part {
	case PartDate:
		return o.ShowDate
	case PartHours:
		return o.ShowHours
	case PartMinutes:
		return o.ShowMinutes
	case PartSeconds:
		return o.ShowSeconds
	default:
		return false
	}
}

// EnabledParts lists the enabled sub-parts in display order.
func (o Options) EnabledParts() []Part {
	var out []Part
	for _, part := range Parts() {
		if o.Enabled(part) {
			out = append(out, part)
		}
	}
	return out
}

// IncludeDate reports whether the canonical string carries the date prefix.
func (o Options) IncludeDate() bool {
	return o.Enabled(PartDate)
}

func WithName(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Name = name
	}
}

// WithParts disables ShowAll and enables exactly the given parts.
func WithParts(parts ...Part) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ShowAll = false
		o.ShowDate, o.ShowHours, o.ShowMinutes, o.ShowSeconds = false, false, false, false
		for _, part := range parts {
			switch part {
			case PartDate:
				o.ShowDate = true
			case PartHours:
				o.ShowHours = true
			case PartMinutes:
				o.ShowMinutes = true
			case PartSeconds:
				o.ShowSeconds = true
			}
		}
	}
}

func WithShowAll(show bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ShowAll = show
	}
}

func WithShowTimeZone(show bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ShowTimeZone = show
	}
}

func WithOnChange(fn ChangeFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.OnChange = fn
	}
}

func WithTriggerHandler(trigger bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.TriggerHandler = trigger
	}
}

func WithValidateBounds(validate bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ValidateBounds = validate
	}
}

func WithClock(clock func() time.Time) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Clock = clock
	}
}

// WithOptions replaces the configuration with opts, typically one produced by
// LoadOptions. Later option functions still apply on top.
func WithOptions(opts Options) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		*o = opts
	}
}
