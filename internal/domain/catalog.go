// Package domain defines the catalog document types stored in MongoDB.
package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Collection names. Uniqueness per natural key is enforced by the upsert
// filters in the store and ingest layers, not by store-level constraints.
const (
	CollectionBooks    = "books"
	CollectionRatings  = "ratings"
	CollectionTags     = "tags"
	CollectionBookTags = "book_tags"
	CollectionToRead   = "to_read"
)

// Book is a catalog entry. Natural key: book_id. Direct lookups use the
// store-generated ObjectID; tag joins use goodreads_book_id.
type Book struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookID                  int64              `bson:"book_id" json:"book_id"`
	GoodreadsBookID         int64              `bson:"goodreads_book_id,omitempty" json:"goodreads_book_id,omitempty"`
	Title                   string             `bson:"title" json:"title"`
	Authors                 string             `bson:"authors" json:"authors"`
	OriginalPublicationYear float64            `bson:"original_publication_year,omitempty" json:"original_publication_year,omitempty"`
	AverageRating           float64            `bson:"average_rating,omitempty" json:"average_rating,omitempty"`
	RatingsCount            int64              `bson:"ratings_count,omitempty" json:"ratings_count,omitempty"`
}

// Rating is one user's rating of one book. Natural key: (user_id, book_id).
// A new rating for the same pair overwrites the old one.
type Rating struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID int64              `bson:"user_id" json:"user_id"`
	BookID int64              `bson:"book_id" json:"book_id"`
	Rating int                `bson:"rating" json:"rating"`
}

// Tag is a community tag. Natural key: tag_id.
type Tag struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TagID   int64              `bson:"tag_id" json:"tag_id"`
	TagName string             `bson:"tag_name" json:"tag_name"`
}

// TagWithCount is a Tag annotated with the number of book_tags rows
// referencing it. Produced by the tag listing aggregation.
type TagWithCount struct {
	Tag       `bson:",inline"`
	BookCount int64 `bson:"book_count" json:"book_count"`
}

// BookTag joins books to tags. Natural key: (goodreads_book_id, tag_id).
type BookTag struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	GoodreadsBookID int64              `bson:"goodreads_book_id" json:"goodreads_book_id"`
	TagID           int64              `bson:"tag_id" json:"tag_id"`
	Count           int64              `bson:"count" json:"count"`
}

// ToRead marks a book on a user's to-read shelf. Natural key: (user_id, book_id).
type ToRead struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID int64              `bson:"user_id" json:"user_id"`
	BookID int64              `bson:"book_id" json:"book_id"`
}

// RatingsSummary aggregates all ratings of a single book. Histogram buckets
// are keyed "1" through "5" and always sum to Count.
type RatingsSummary struct {
	Average   float64          `json:"average"`
	Count     int64            `json:"count"`
	Histogram map[string]int64 `json:"histogram"`
}
