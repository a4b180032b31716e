package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Renderer writes named templates. Handlers hold one so tests can render
// through html/template without booting the engine.
type Renderer interface {
	Page(w http.ResponseWriter, r *http.Request, name string, data any)
	Snippet(w http.ResponseWriter, name string, data any)
}

type engineRenderer struct{}

// EngineRenderer renders through the booted waffle template engine.
func EngineRenderer() Renderer { return engineRenderer{} }

func (engineRenderer) Page(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

func (engineRenderer) Snippet(w http.ResponseWriter, name string, data any) {
	templates.RenderSnippet(w, name, data)
}
