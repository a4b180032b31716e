// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	statuscountstore "github.com/dalemusser/activityboard/internal/app/store/statuscounts"
	"github.com/dalemusser/activityboard/internal/app/system/indexes"
	"github.com/dalemusser/activityboard/internal/app/system/tally"
	"github.com/dalemusser/activityboard/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB opens the MongoDB client when the mongo data source is
// selected. The static source needs no backend and returns empty deps.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if appCfg.DataSource != DataSourceMongo {
		logger.Info("static data source selected; MongoDB not used")
		return DBDeps{}, nil
	}

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetAppName("activityboard")
	if appCfg.MongoMaxPoolSize > 0 {
		opts.SetMaxPoolSize(appCfg.MongoMaxPoolSize)
	}
	if appCfg.MongoMinPoolSize > 0 {
		opts.SetMinPoolSize(appCfg.MongoMinPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Ping(), logger, "mongo ping")
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the status_counts indexes and, when enabled, seeds
// the default mapping into an empty collection.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	return ensureStatusCounts(ctx, deps.MongoDatabase, appCfg.SeedDefaults, logger)
}

func ensureStatusCounts(ctx context.Context, db *mongo.Database, seed bool, logger *zap.Logger) error {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Medium(), logger, "ensure status_counts")
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, logger); err != nil {
		logger.Error("index ensure failed", zap.Error(err))
		return fmt.Errorf("indexes: %w", err)
	}
	if !seed {
		return nil
	}

	created, err := statuscountstore.New(db).Seed(ctx, tally.Default())
	if err != nil {
		logger.Error("status_counts seed failed", zap.Error(err))
		return err
	}
	if created > 0 {
		logger.Info("seeded status_counts", zap.Int("documents", created))
	}
	return nil
}
