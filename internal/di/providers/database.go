package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/goodbooksapp/goodbooks-server/internal/config"
	"github.com/goodbooksapp/goodbooks-server/internal/logger"
	"github.com/goodbooksapp/goodbooks-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Close(ctx)
}

// ProvideStore provides the document store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
	defer cancel()

	db, err := store.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database connected", "database", cfg.Mongo.Database)

	return &StoreHandle{Store: db}, nil
}
