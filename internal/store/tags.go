package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/goodbooksapp/goodbooks-server/internal/domain"
)

// TagsForBook returns the tags attached to the given goodreads book id,
// joined through book_tags. A book_tags row whose tag_id has no matching tag
// is dropped by the $unwind stage.
func (s *Store) TagsForBook(ctx context.Context, goodreadsBookID int64) ([]domain.Tag, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"goodreads_book_id": goodreadsBookID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         domain.CollectionTags,
			"localField":   "tag_id",
			"foreignField": "tag_id",
			"as":           "tags",
		}}},
		bson.D{{Key: "$unwind", Value: "$tags"}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$tags"}}},
	}

	cursor, err := s.bookTags().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	tags := []domain.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}

	return tags, nil
}

// ListTagsWithCounts returns one page of tags, each annotated with the number
// of book_tags rows referencing it. The joined set is materialized fully and
// windowed in memory; tag cardinality is expected to stay small.
func (s *Store) ListTagsWithCounts(ctx context.Context, p PageParams) (*Page[domain.TagWithCount], error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         domain.CollectionBookTags,
			"localField":   "tag_id",
			"foreignField": "tag_id",
			"as":           "books",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{"book_count": bson.M{"$size": "$books"}}}},
		bson.D{{Key: "$project", Value: bson.M{"books": 0}}},
	}

	cursor, err := s.tags().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	tags := []domain.TagWithCount{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}

	return pageSlice(tags, p), nil
}
