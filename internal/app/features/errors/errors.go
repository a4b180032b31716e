// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/activityboard/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Message string
	BackURL string
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct {
	Render viewdata.Renderer
}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{Render: viewdata.EngineRenderer()}
}

// NotFound renders the "page not found" page. Mounted as the router's
// NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderNotFound(h.Render, w, r)
}

func renderNotFound(rd viewdata.Renderer, w http.ResponseWriter, r *http.Request) {
	renderError(rd, w, r, http.StatusNotFound, "Página no encontrada",
		"La página que buscas no existe.", httpnav.ResolveBackURL(r, "/"))
}

func renderError(rd viewdata.Renderer, w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title),
		Status:  status,
		Message: msg,
		BackURL: backURL,
	}
	w.WriteHeader(status)
	rd.Page(w, r, "error_page", data)
}
