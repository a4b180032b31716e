package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/activityboard/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateStatusCount inserts one raw status_counts document.
func (f *Fixtures) CreateStatusCount(ctx context.Context, st models.Status, count int) models.StatusCount {
	f.t.Helper()

	doc := models.StatusCount{
		Status:    st,
		Count:     count,
		Position:  st.Position(),
		UpdatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("status_counts").InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to create status count %q: %v", st, err)
	}
	return doc
}
