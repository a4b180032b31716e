package testutil

import (
	"html/template"
	"io/fs"
	"net/http"
	"testing"

	"github.com/dalemusser/activityboard/internal/app/resources"
	"github.com/dalemusser/activityboard/internal/app/system/viewdata"
)

// TemplateRenderer parses the given template files with html/template so
// handler tests can assert on real markup without booting the engine.
type TemplateRenderer struct {
	t    *testing.T
	tmpl *template.Template
}

var _ viewdata.Renderer = (*TemplateRenderer)(nil)

// NewTemplateRenderer parses the shared page chrome plus patterns from fsys,
// or fails the test.
func NewTemplateRenderer(t *testing.T, fsys fs.FS, patterns ...string) *TemplateRenderer {
	t.Helper()
	tmpl, err := template.ParseFS(resources.FS, resources.Patterns...)
	if err != nil {
		t.Fatalf("parse shared templates: %v", err)
	}
	if _, err := tmpl.ParseFS(fsys, patterns...); err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	return &TemplateRenderer{t: t, tmpl: tmpl}
}

// Page executes the named template into w.
func (tr *TemplateRenderer) Page(w http.ResponseWriter, r *http.Request, name string, data any) {
	tr.Snippet(w, name, data)
}

// Snippet executes the named template into w.
func (tr *TemplateRenderer) Snippet(w http.ResponseWriter, name string, data any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	if err := tr.tmpl.ExecuteTemplate(w, name, data); err != nil {
		tr.t.Errorf("execute %q: %v", name, err)
	}
}
