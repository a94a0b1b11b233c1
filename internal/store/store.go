// Package store implements the MongoDB persistence layer for the GoodBooks catalog.
//
// Every operation is a single find or aggregate round trip (two for paginated
// listings, which run an independent count over the same filter). The store
// imposes no locking or transactions; conflicting upserts resolve last-write-wins.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goodbooksapp/goodbooks-server/internal/domain"
)

// Sentinel errors returned by store operations. Services map these to
// domain error codes.
var (
	ErrInvalidBookID = errors.New("invalid book id")
	ErrBookNotFound  = errors.New("book not found")
	ErrNoRatings     = errors.New("no ratings found")
)

const connectTimeout = 10 * time.Second

// Store wraps a MongoDB database handle shared across requests.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

// Connect establishes the MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, uri, database string, logger *slog.Logger) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(database),
		logger: logger,
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// collection returns a handle to a named collection.
func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// books, ratings, tags, bookTags and toRead are typed shortcuts for the five
// catalog collections.
func (s *Store) books() *mongo.Collection    { return s.collection(domain.CollectionBooks) }
func (s *Store) ratings() *mongo.Collection  { return s.collection(domain.CollectionRatings) }
func (s *Store) tags() *mongo.Collection     { return s.collection(domain.CollectionTags) }
func (s *Store) bookTags() *mongo.Collection { return s.collection(domain.CollectionBookTags) }
func (s *Store) toRead() *mongo.Collection   { return s.collection(domain.CollectionToRead) }

// BulkUpsert submits one ordered bulk write against the named collection and
// returns the upserted and modified counts. Used by the CSV ingest path.
func (s *Store) BulkUpsert(ctx context.Context, collection string, models []mongo.WriteModel) (upserted, modified int64, err error) {
	if len(models) == 0 {
		return 0, 0, nil
	}

	result, err := s.collection(collection).BulkWrite(ctx, models)
	if err != nil {
		return 0, 0, fmt.Errorf("bulk write to %s failed: %w", collection, err)
	}

	return result.UpsertedCount, result.ModifiedCount, nil
}
