package errors_test

import (
	"errors"
	"net/http"
	"testing"

	uierrors "github.com/dalemusser/activityboard/internal/app/features/errors"
	"github.com/dalemusser/activityboard/internal/app/system/requestlog"
	"github.com/dalemusser/activityboard/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogServerError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	el := &uierrors.ErrorLogger{
		Log:    zap.New(core),
		Render: testutil.NewTemplateRenderer(t, uierrors.FS, "templates/*.gohtml"),
	}

	req := testutil.NewRequest("GET", "/export.csv")
	req = req.WithContext(requestlog.WithID(req.Context(), "req-1"))
	rec := testutil.NewRecorder()

	el.LogServerError(rec, req, "load failed", errors.New("socket closed"), "No disponible.", "/")

	rec.AssertStatus(t, http.StatusInternalServerError)
	rec.AssertContains(t, "No disponible.")
	rec.AssertContains(t, "req-1")
	rec.AssertNotContains(t, "socket closed")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "load failed" {
		t.Errorf("message = %q", entries[0].Message)
	}
	if entries[0].ContextMap()["request_id"] != "req-1" {
		t.Errorf("request_id = %v", entries[0].ContextMap()["request_id"])
	}
}

func TestLogServerError_DefaultMessage(t *testing.T) {
	el := &uierrors.ErrorLogger{
		Log:    zap.NewNop(),
		Render: testutil.NewTemplateRenderer(t, uierrors.FS, "templates/*.gohtml"),
	}
	rec := testutil.NewRecorder()
	el.LogServerError(rec, testutil.NewRequest("GET", "/"), "x", errors.New("y"), "", "")

	rec.AssertContains(t, "Ocurrió un error inesperado.")
	rec.AssertContains(t, `href="/"`)
}

func TestNotFound(t *testing.T) {
	h := uierrors.NewHandler()
	h.Render = testutil.NewTemplateRenderer(t, uierrors.FS, "templates/*.gohtml")

	rec := testutil.NewRecorder()
	h.NotFound(rec, testutil.NewRequest("GET", "/nope"))

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Página no encontrada")
}

func TestErrorLoggerNotFound(t *testing.T) {
	el := &uierrors.ErrorLogger{
		Log:    zap.NewNop(),
		Render: testutil.NewTemplateRenderer(t, uierrors.FS, "templates/*.gohtml"),
	}
	rec := testutil.NewRecorder()
	el.NotFound(rec, testutil.NewRequest("GET", "/tab/summary"))
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Página no encontrada")
	rec.AssertContains(t, "La página que buscas no existe.")
}
