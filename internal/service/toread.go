package service

import (
	"context"
	"log/slog"

	"github.com/goodbooksapp/goodbooks-server/internal/domain"
	"github.com/goodbooksapp/goodbooks-server/internal/store"
)

// ToReadStore is the store surface the to-read service depends on.
type ToReadStore interface {
	ListToRead(ctx context.Context, userID int64, p store.PageParams) (*store.Page[domain.ToRead], error)
}

// ToReadService serves users' to-read shelves.
type ToReadService struct {
	store  ToReadStore
	logger *slog.Logger
}

// NewToReadService creates a new to-read service.
func NewToReadService(store ToReadStore, logger *slog.Logger) *ToReadService {
	return &ToReadService{
		store:  store,
		logger: logger,
	}
}

// ListForUser returns a page of the user's to-read entries.
func (s *ToReadService) ListForUser(ctx context.Context, userID int64, p store.PageParams) (*store.Page[domain.ToRead], error) {
	return s.store.ListToRead(ctx, userID, p)
}
