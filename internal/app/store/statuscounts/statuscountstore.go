// internal/app/store/statuscounts/statuscountstore.go
package statuscountstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/dalemusser/activityboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the collection holding one document per status.
const CollectionName = "status_counts"

// Store provides access to the status_counts collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new status counts store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// IndexModels returns the unique status index and the display-order index.
func IndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("uniq_status_counts_status").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index().SetName("idx_status_counts_position"),
		},
	}
}

// EnsureIndexes creates IndexModels. Safe to call repeatedly.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, IndexModels())
	return err
}

// List reads all documents in display order and builds the counts.
// A missing status yields tally.ErrMissingStatus; an unknown one yields
// models.ErrUnknownStatus.
func (s *Store) List(ctx context.Context) (tally.Counts, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return tally.Counts{}, err
	}
	defer cur.Close(ctx)

	var rows []models.StatusCount
	if err := cur.All(ctx, &rows); err != nil {
		return tally.Counts{}, err
	}

	m := make(map[models.Status]int, len(rows))
	for _, row := range rows {
		m[row.Status] = row.Count
	}
	counts, err := tally.New(m)
	if err != nil {
		return tally.Counts{}, fmt.Errorf("%s: %w", CollectionName, err)
	}
	return counts, nil
}

// Set upserts the count for one status.
func (s *Store) Set(ctx context.Context, st models.Status, count int) error {
	if !st.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownStatus, string(st))
	}
	if count < 0 {
		return fmt.Errorf("%w: %s=%d", tally.ErrNegativeCount, st, count)
	}

	filter := bson.M{"status": st}
	update := bson.M{
		"$set": bson.M{
			"count":      count,
			"position":   st.Position(),
			"updated_at": time.Now().UTC(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Seed inserts counts for every status that has no document yet and leaves
// existing documents untouched. It returns how many documents were created.
func (s *Store) Seed(ctx context.Context, counts tally.Counts) (int, error) {
	now := time.Now().UTC()
	created := 0
	for _, e := range counts.Entries() {
		filter := bson.M{"status": e.Status}
		update := bson.M{
			"$setOnInsert": bson.M{
				"status":     e.Status,
				"count":      e.Count,
				"position":   e.Status.Position(),
				"updated_at": now,
			},
		}
		res, err := s.c.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", e.Status, err)
		}
		created += int(res.UpsertedCount)
	}
	return created, nil
}
