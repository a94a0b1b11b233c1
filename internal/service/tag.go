package service

import (
	"context"
	"log/slog"

	"github.com/goodbooksapp/goodbooks-server/internal/domain"
	"github.com/goodbooksapp/goodbooks-server/internal/store"
)

// TagStore is the store surface the tag service depends on.
type TagStore interface {
	TagsForBook(ctx context.Context, goodreadsBookID int64) ([]domain.Tag, error)
	ListTagsWithCounts(ctx context.Context, p store.PageParams) (*store.Page[domain.TagWithCount], error)
}

// TagService serves tag listings and per-book tag lookups.
type TagService struct {
	store  TagStore
	logger *slog.Logger
}

// NewTagService creates a new tag service.
func NewTagService(store TagStore, logger *slog.Logger) *TagService {
	return &TagService{
		store:  store,
		logger: logger,
	}
}

// TagsForBook returns the full unpaginated tag list for a goodreads book id.
// An unknown book id yields an empty list, not an error.
func (s *TagService) TagsForBook(ctx context.Context, goodreadsBookID int64) ([]domain.Tag, error) {
	return s.store.TagsForBook(ctx, goodreadsBookID)
}

// ListTags returns a page of tags with their book counts.
func (s *TagService) ListTags(ctx context.Context, p store.PageParams) (*store.Page[domain.TagWithCount], error) {
	return s.store.ListTagsWithCounts(ctx, p)
}
