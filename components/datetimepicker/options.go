package datetimepicker

import (
	"net/http"
	"time"

	"github.com/goliatone/go-datetimefield/pkg/datetime"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath   string
	NameParam   string
	ValueParam  string
	DefaultName string
	Sanitize    bool
	Location    *time.Location
	Guard       GuardFunc

	Picker []datetime.OptionFn
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:   "/api/datetime",
		NameParam:   "name",
		ValueParam:  "value",
		DefaultName: "datetime",
		Sanitize:    true,
		Location:    time.Local,
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
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/datetime"
	}
	if opts.NameParam == "" {
		opts.NameParam = "name"
	}
	if opts.ValueParam == "" {
		opts.ValueParam = "value"
	}
	if opts.DefaultName == "" {
		opts.DefaultName = "datetime"
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Picker != nil {
		opts.Picker = append([]datetime.OptionFn{}, opts.Picker...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithNameParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.NameParam = name
	}
}

func WithValueParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ValueParam = name
	}
}

func WithDefaultName(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultName = name
	}
}

func WithSanitize(sanitize bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sanitize = sanitize
	}
}

func WithLocation(loc *time.Location) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Location = loc
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithPickerOptions appends picker options applied to every request.
func WithPickerOptions(fns ...datetime.OptionFn) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Picker = append(o.Picker, fns...)
	}
}
