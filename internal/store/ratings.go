package store

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goodbooksapp/goodbooks-server/internal/domain"
)

// ratingsGroup is the decode target of the summary aggregation.
type ratingsGroup struct {
	Average float64 `bson:"average"`
	Count   int64   `bson:"count"`
	Values  []int   `bson:"values"`
}

// SummarizeRatings aggregates all ratings of a book into mean, count and a
// five-bucket histogram. Returns ErrNoRatings when no rating rows exist —
// an unknown book id and a known book with zero ratings are indistinguishable.
func (s *Store) SummarizeRatings(ctx context.Context, bookID int64) (*domain.RatingsSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"book_id": bookID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     "$book_id",
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
			"values":  bson.M{"$push": "$rating"},
		}}},
	}

	cursor, err := s.ratings().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var groups []ratingsGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, ErrNoRatings
	}

	group := groups[0]
	return &domain.RatingsSummary{
		Average:   group.Average,
		Count:     group.Count,
		Histogram: buildHistogram(group.Values),
	}, nil
}

// buildHistogram counts rating occurrences into the fixed buckets "1".."5".
// Computed in memory from the pushed value list; per-book rating volume is
// expected to stay small.
func buildHistogram(values []int) map[string]int64 {
	histogram := make(map[string]int64, 5)
	for i := 1; i <= 5; i++ {
		histogram[strconv.Itoa(i)] = 0
	}
	for _, v := range values {
		if v >= 1 && v <= 5 {
			histogram[strconv.Itoa(v)]++
		}
	}
	return histogram
}

// UpsertRating stores a rating keyed by (user_id, book_id), creating the
// document if absent and fully overwriting its fields if present.
func (s *Store) UpsertRating(ctx context.Context, r domain.Rating) error {
	filter := bson.M{"user_id": r.UserID, "book_id": r.BookID}
	update := bson.M{"$set": bson.M{
		"user_id": r.UserID,
		"book_id": r.BookID,
		"rating":  r.Rating,
	}}

	_, err := s.ratings().UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
