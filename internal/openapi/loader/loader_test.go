package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	pkgopenapi "github.com/goliatone/go-datetimefield/pkg/openapi"
)

func TestLoader_LoadsFromFS(t *testing.T) {
	fsys := fstest.MapFS{"specs/events.yaml": {Data: []byte("openapi: 3.0.3\n")}}
	l := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(fsys)))

	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromFS("specs/events.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Location() != "specs/events.yaml" {
		t.Fatalf("unexpected location %q", doc.Location())
	}
	if !strings.HasPrefix(string(doc.Raw()), "openapi:") {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoader_LoadsFromFile(t *testing.T) {
	l := New(pkgopenapi.NewLoaderOptions())

	path := filepath.Join("..", "..", "..", "pkg", "openapi", "testdata", "events.yaml")
	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Raw()) == 0 {
		t.Fatalf("expected payload")
	}
}

func TestLoader_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"openapi":"3.0.3"}`))
	}))
	defer srv.Close()

	disabled := New(pkgopenapi.NewLoaderOptions())
	if _, err := disabled.Load(context.Background(), pkgopenapi.SourceFromURL(srv.URL+"/spec.json")); err == nil {
		t.Fatalf("expected http to be disabled")
	}

	l := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPClient(srv.Client())))
	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromURL(srv.URL+"/spec.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != `{"openapi":"3.0.3"}` {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}

	if _, err := l.Load(context.Background(), pkgopenapi.SourceFromURL(srv.URL+"/missing.json")); err == nil {
		t.Fatalf("expected status error")
	}
}

func TestLoader_NilSource(t *testing.T) {
	if _, err := New(pkgopenapi.LoaderOptions{}).Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
}
