// Package datetimefield wires the datetime picker, the HTTP component, and
// OpenAPI field discovery behind a few top-level helpers.
package datetimefield

import (
	"context"

	internalloader "github.com/goliatone/go-datetimefield/internal/openapi/loader"
	internalscanner "github.com/goliatone/go-datetimefield/internal/openapi/scanner"
	"github.com/goliatone/go-datetimefield/pkg/datetime"
	pkgopenapi "github.com/goliatone/go-datetimefield/pkg/openapi"
)

// Value aliases datetime.Value for callers that only import the root package.
type Value = datetime.Value

// Binding aliases openapi.Binding.
type Binding = pkgopenapi.Binding

// NewPicker constructs a picker over fields.
func NewPicker(fields datetime.Fields, options ...datetime.OptionFn) (*datetime.Picker, error) {
	return datetime.New(fields, options...)
}

// IsCanonical reports whether text has the YYYY-MM-DD HH:MM:SS shape.
func IsCanonical(text string) bool {
	return datetime.IsCanonical(text)
}

// Parse parses and normalizes a canonical value.
func Parse(text string) (Value, error) {
	return datetime.Parse(text)
}

// NewLoader constructs an OpenAPI loader while keeping the concrete type
// hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalloader.New(pkgopenapi.NewLoaderOptions(options...))
}

// NewScanner constructs a date/time field scanner backed by kin-openapi.
func NewScanner(options ...pkgopenapi.ScannerOption) pkgopenapi.Scanner {
	return internalscanner.New(pkgopenapi.NewScannerOptions(options...))
}

// ScanSource loads src and returns its date/time bindings.
func ScanSource(ctx context.Context, src pkgopenapi.Source, loaderOptions ...pkgopenapi.LoaderOption) ([]Binding, error) {
	doc, err := NewLoader(loaderOptions...).Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return NewScanner().Scan(ctx, doc)
}
