package scanner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-datetimefield/pkg/openapi"
)

var preferredMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// Scanner implements pkgopenapi.Scanner using kin-openapi.
type Scanner struct {
	options pkgopenapi.ScannerOptions
}

var _ pkgopenapi.Scanner = (*Scanner)(nil)

func New(options pkgopenapi.ScannerOptions) *Scanner {
	return &Scanner{options: options}
}

// Scan loads doc and walks every operation's request body schema.
func (s *Scanner) Scan(ctx context.Context, doc pkgopenapi.Document) ([]pkgopenapi.Binding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi scanner: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi scanner: load document: %w", err)
	}
	if s.options.ValidateDocument {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi scanner: validate: %w", err)
		}
	}

	var bindings []pkgopenapi.Binding
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for method, operation := range item.Operations() {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				bindings = append(bindings, s.scanOperation(method, path, operation)...)
			}
		}
	}

	sort.SliceStable(bindings, func(i, j int) bool {
		if bindings[i].OperationID != bindings[j].OperationID {
			return bindings[i].OperationID < bindings[j].OperationID
		}
		return bindings[i].FieldPath < bindings[j].FieldPath
	})
	return bindings, nil
}

func (s *Scanner) scanOperation(method, path string, operation *openapi3.Operation) []pkgopenapi.Binding {
	if operation == nil {
		return nil
	}
	schema := requestSchema(operation.RequestBody)
	if schema == nil {
		return nil
	}

	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}

	w := walker{
		options: s.options,
		seen:    make(map[*openapi3.Schema]bool),
		bound:   make(map[string]bool),
		base: pkgopenapi.Binding{
			OperationID: opID,
			Method:      strings.ToUpper(method),
			Path:        path,
		},
	}
	w.walk(schema, "", false)
	return w.found
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.SchemaRef {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range preferredMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil {
			return mt.Schema
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt != nil && mt.Schema != nil {
			return mt.Schema
		}
	}
	return nil
}

type walker struct {
	options pkgopenapi.ScannerOptions
	seen    map[*openapi3.Schema]bool
	bound   map[string]bool
	base    pkgopenapi.Binding
	found   []pkgopenapi.Binding
}

func (w *walker) walk(ref *openapi3.SchemaRef, path string, required bool) {
	if ref == nil || ref.Value == nil {
		return
	}
	schema := ref.Value
	if w.seen[schema] {
		return
	}
	w.seen[schema] = true
	defer delete(w.seen, schema)

	for _, member := range schema.AllOf {
		w.walk(member, path, required)
	}

	if path != "" && isStringLike(schema.Type) {
		format := pkgopenapi.NormalizeFormat(schema.Format)
		if w.options.Accepts(format) && !w.bound[path] {
			w.bound[path] = true
			binding := w.base
			binding.FieldPath = path
			binding.Format = format
			binding.Required = required
			binding.Description = schema.Description
			w.found = append(w.found, binding)
		}
	}

	for name, property := range schema.Properties {
		w.walk(property, joinPath(path, name), contains(schema.Required, name))
	}
	if schema.Items != nil {
		w.walk(schema.Items, path+"[]", false)
	}
}

func isStringLike(types *openapi3.Types) bool {
	if types == nil {
		return true
	}
	values := types.Slice()
	if len(values) == 0 {
		return true
	}
	return contains(values, openapi3.TypeString)
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
