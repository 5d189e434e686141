package openapi

import "context"

// Scanner lists the date/time bindings found in a document.
type Scanner interface {
	Scan(ctx context.Context, doc Document) ([]Binding, error)
}

// ScannerOptions configures a Scanner.
type ScannerOptions struct {
	// Formats restricts the formats reported. Empty means all of
	// FormatDateTime, FormatDate and FormatTime.
	Formats []string

	// ValidateDocument runs kin-openapi validation before scanning.
	ValidateDocument bool
}

type ScannerOption func(*ScannerOptions)

func WithFormats(formats ...string) ScannerOption {
	return func(opts *ScannerOptions) {
		opts.Formats = append([]string(nil), formats...)
	}
}

func WithDocumentValidation(enabled bool) ScannerOption {
	return func(opts *ScannerOptions) {
		opts.ValidateDocument = enabled
	}
}

func NewScannerOptions(options ...ScannerOption) ScannerOptions {
	cfg := ScannerOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Accepts reports whether a normalized format is enabled.
func (o ScannerOptions) Accepts(format string) bool {
	if format == "" {
		return false
	}
	if len(o.Formats) == 0 {
		return true
	}
	for _, candidate := range o.Formats {
		if NormalizeFormat(candidate) == format {
			return true
		}
	}
	return false
}
