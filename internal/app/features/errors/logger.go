// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/activityboard/internal/app/system/requestlog"
	"github.com/dalemusser/activityboard/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ErrorLogger logs server-side failures and shows the user a friendly page.
type ErrorLogger struct {
	Log    *zap.Logger
	Render viewdata.Renderer
}

// NewErrorLogger constructs an ErrorLogger that renders through the engine.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger, Render: viewdata.EngineRenderer()}
}

// LogServerError logs msg with err and renders a 500 page showing userMsg
// with a link back to backURL.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestlog.ID(r.Context())),
	)
	if userMsg == "" {
		userMsg = "Ocurrió un error inesperado."
	}
	renderError(e.Render, w, r, http.StatusInternalServerError, "Error del servidor", userMsg, backURL)
}

// NotFound renders the 404 page. For handlers that reject a path parameter
// after the router has already matched the route.
func (e *ErrorLogger) NotFound(w http.ResponseWriter, r *http.Request) {
	renderNotFound(e.Render, w, r)
}
