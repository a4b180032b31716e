package indexes_test

import (
	"testing"

	statuscountstore "github.com/dalemusser/activityboard/internal/app/store/statuscounts"
	"github.com/dalemusser/activityboard/internal/app/system/indexes"
	"github.com/dalemusser/activityboard/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func indexNames(t *testing.T, coll *mongo.Collection) map[string]bool {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		t.Fatalf("list indexes: %v", err)
	}
	var specs []bson.M
	if err := cur.All(ctx, &specs); err != nil {
		t.Fatalf("decode indexes: %v", err)
	}
	names := map[string]bool{}
	for _, s := range specs {
		if n, ok := s["name"].(string); ok {
			names[n] = true
		}
	}
	return names
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 2; i++ {
		if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
			t.Fatalf("EnsureAll call %d failed: %v", i+1, err)
		}
	}

	names := indexNames(t, db.Collection(statuscountstore.CollectionName))
	for _, want := range []string{"uniq_status_counts_status", "idx_status_counts_position"} {
		if !names[want] {
			t.Errorf("missing index %s (have %v)", want, names)
		}
	}
}

func TestEnsureAll_RenamesExistingIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coll := db.Collection(statuscountstore.CollectionName)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "position", Value: 1}},
		Options: options.Index().SetName("legacy_position"),
	})
	if err != nil {
		t.Fatalf("create legacy index: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names := indexNames(t, coll)
	if names["legacy_position"] {
		t.Error("legacy index should have been replaced")
	}
	if !names["idx_status_counts_position"] {
		t.Error("expected idx_status_counts_position")
	}
}

func TestEnsureAll_UniqueIndexEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	coll := db.Collection(statuscountstore.CollectionName)
	if _, err := coll.InsertOne(ctx, bson.M{"status": "Realizado", "count": 1, "position": 0}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := coll.InsertOne(ctx, bson.M{"status": "Realizado", "count": 2, "position": 0}); err == nil {
		t.Error("expected duplicate key error for unique index on status")
	}
}

func TestEnsureAll_DuplicatesBlockUniqueIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coll := db.Collection(statuscountstore.CollectionName)
	for i := 0; i < 2; i++ {
		if _, err := coll.InsertOne(ctx, bson.M{"status": "Pendiente", "count": i, "position": 1}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err == nil {
		t.Error("expected EnsureAll to fail when duplicates are present")
	}
}
