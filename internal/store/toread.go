package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/goodbooksapp/goodbooks-server/internal/domain"
)

// ListToRead returns one page of a user's to-read shelf entries.
func (s *Store) ListToRead(ctx context.Context, userID int64, p PageParams) (*Page[domain.ToRead], error) {
	filter := bson.M{"user_id": userID}
	return paginate[domain.ToRead](ctx, s.toRead(), filter, nil, p)
}
