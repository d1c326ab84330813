package factory

import (
	"context"
	"fmt"

	"github.com/dropspot/dropspot/internal/config"
	"github.com/dropspot/dropspot/internal/store"
	"github.com/dropspot/dropspot/internal/store/memstore"
	mongostore "github.com/dropspot/dropspot/internal/store/mongo"
)

// NewStore selects the store adapter based on cfg.DBDriver.
func NewStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.DBDriver {
	case "mongo":
		client, err := mongostore.Open(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			return nil, err
		}
		return mongostore.NewWithDatabase(db), nil
	case "memory":
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
