package datetimepicker

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-datetimefield/pkg/datetime"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Response is the JSON payload written by the handler.
type Response struct {
	Name    string          `json:"name"`
	Value   string          `json:"value"`
	Parts   datetime.Value  `json:"parts"`
	Clamped []datetime.Part `json:"clamped,omitempty"`
	Time    string          `json:"time,omitempty"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options
// value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodPost:
		default:
			w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodHead, http.MethodPost}, ", "))
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeError(w, err, http.StatusForbidden)
				return
			}
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		var (
			resp Response
			err  error
		)
		if r.Method == http.MethodPost {
			resp, err = Submit(r.Form, opts)
		} else {
			resp, err = Snapshot(r.Form, opts)
		}
		if err != nil {
			writeError(w, err, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(resp)
	})
}

// Snapshot resolves the picker state for a value that has not been edited
// yet: the backing value when it is canonical, otherwise the current time.
// The value is read from opts.ValueParam or from the field name itself.
func Snapshot(values url.Values, opts Options) (Response, error) {
	name := fieldName(values, opts)
	fields := newFormFields(name, values, opts.Sanitize)
	if raw := fields.values.Get(opts.ValueParam); raw != "" && !fields.has(datetime.PartValue) {
		fields.values.Set(name, raw)
	}

	picker, err := newPicker(fields, name, opts)
	if err != nil {
		return Response{}, err
	}
	canonical := picker.Show()
	return buildResponse(name, canonical, picker, nil, opts), nil
}

// Submit runs the change cycle over submitted part values. Enabled parts
// that were not submitted keep the snapshot taken from the backing value.
func Submit(values url.Values, opts Options) (Response, error) {
	name := fieldName(values, opts)
	fields := newFormFields(name, values, opts.Sanitize)

	picker, err := newPicker(fields, name, opts)
	if err != nil {
		return Response{}, err
	}

	snapshot := picker.Value()
	for _, part := range picker.Options().EnabledParts() {
		if !fields.has(part) {
			fields.Set(part, snapshot.Part(part))
		}
	}

	fields.recording = true
	canonical := picker.OnFieldsChanged()
	fields.recording = false

	return buildResponse(name, canonical, picker, fields.rewritten, opts), nil
}

func newPicker(fields *formFields, name string, opts Options) (*datetime.Picker, error) {
	fns := append(append([]datetime.OptionFn{}, opts.Picker...), datetime.WithName(name))
	picker, err := datetime.New(fields, fns...)
	if err != nil {
		var cfgErr *datetime.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, StatusError{Code: http.StatusBadRequest, Err: err}
		}
		return nil, err
	}
	return picker, nil
}

func buildResponse(name, canonical string, picker *datetime.Picker, clamped []datetime.Part, opts Options) Response {
	var parts datetime.Value
	for _, part := range picker.Options().EnabledParts() {
		parts = parts.WithPart(part, picker.Value().Part(part))
	}
	resp := Response{
		Name:    name,
		Value:   canonical,
		Parts:   parts,
		Clamped: clamped,
	}
	if picker.Options().IncludeDate() {
		if t, err := time.ParseInLocation(datetime.Layout, canonical, opts.Location); err == nil {
			resp.Time = t.Format(time.RFC3339)
		}
	}
	return resp
}

func fieldName(values url.Values, opts Options) string {
	if configured := strings.TrimSpace(datetime.NewOptions(opts.Picker...).Name); configured != "" {
		return configured
	}
	if entries := values[opts.NameParam]; len(entries) > 0 {
		if name := strings.TrimSpace(entries[0]); name != "" {
			return name
		}
	}
	return opts.DefaultName
}

func writeError(w http.ResponseWriter, err error, fallback int) {
	if w == nil {
		return
	}
	code := fallback
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = fallback
		}
	}
	http.Error(w, http.StatusText(code), code)
}
