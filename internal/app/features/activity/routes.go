// internal/app/features/activity/routes.go
package activity

import "github.com/go-chi/chi/v5"

// Routes returns the router for the dashboard, its HTMX tab partial and
// the exports. Mounted at "/".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeDashboard)

	// HTMX partial for switching tabs without a full reload
	r.Get("/tab/{tab}", h.ServeTab)

	r.Get("/export.json", h.ServeExportJSON)
	r.Get("/export.csv", h.ServeExportCSV)

	return r
}
