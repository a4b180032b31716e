// internal/app/features/theme/routes.go
package theme

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /theme.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeSet)
	return r
}
