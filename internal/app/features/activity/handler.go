// internal/app/features/activity/handler.go
package activity

import (
	"context"

	uierrors "github.com/dalemusser/activityboard/internal/app/features/errors"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/dalemusser/activityboard/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// CountsSource supplies the status->count mapping for one render.
// Implemented by the Mongo store and the static source.
type CountsSource interface {
	List(ctx context.Context) (tally.Counts, error)
}

// Handler is the shared dependency container for the dashboard feature.
type Handler struct {
	Source     CountsSource
	SourceName string // "static" or "mongo"; used in logs and metrics
	Percenter  tally.Percenter
	Render     viewdata.Renderer
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

// NewHandler constructs a new Handler that renders through the engine.
func NewHandler(src CountsSource, sourceName string, p tally.Percenter, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Source:     src,
		SourceName: sourceName,
		Percenter:  p,
		Render:     viewdata.EngineRenderer(),
		ErrLog:     errLog,
		Log:        logger,
	}
}
