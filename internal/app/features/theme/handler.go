// internal/app/features/theme/handler.go
package theme

import (
	"net/http"

	"github.com/dalemusser/activityboard/internal/app/system/navigation"
	apptheme "github.com/dalemusser/activityboard/internal/app/system/theme"
	"go.uber.org/zap"
)

// Handler saves the visitor's theme choice.
type Handler struct {
	Themes *apptheme.Manager
	Log    *zap.Logger
}

// NewHandler constructs a theme Handler.
func NewHandler(mgr *apptheme.Manager, logger *zap.Logger) *Handler {
	return &Handler{Themes: mgr, Log: logger}
}

// ServeSet stores the posted theme and sends the visitor back.
// POST /theme  form: theme=light|dark|system, return=/path
func (h *Handler) ServeSet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	t, err := apptheme.Parse(r.PostFormValue("theme"))
	if err != nil {
		h.Log.Info("theme: rejected value", zap.Error(err))
		http.Error(w, "invalid theme", http.StatusBadRequest)
		return
	}

	if err := h.Themes.Save(w, r, t); err != nil {
		h.Log.Error("theme: save session", zap.Error(err))
		http.Error(w, "could not save theme", http.StatusInternalServerError)
		return
	}

	dest := navigation.SafeBackURL(r, navigation.ThemeBackURL)

	// HTMX handling: use HX-Redirect to force a client-side navigation.
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", dest)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, dest, http.StatusSeeOther)
}
