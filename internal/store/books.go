package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/goodbooksapp/goodbooks-server/internal/domain"
)

// Sort keys accepted by the book listing.
const (
	SortByAverage      = "avg"
	SortByRatingsCount = "ratings_count"
	SortByYear         = "year"
	SortByTitle        = "title"
)

// sortFields maps sort keys to document field names.
var sortFields = map[string]string{
	SortByAverage:      "average_rating",
	SortByRatingsCount: "ratings_count",
	SortByYear:         "original_publication_year",
	SortByTitle:        "title",
}

// ValidSortKey reports whether key is one of the accepted sort keys.
func ValidSortKey(key string) bool {
	_, ok := sortFields[key]
	return ok
}

// BookQuery describes a filtered, sorted, paginated book listing request.
// Nil range bounds impose no constraint; bounds are inclusive.
type BookQuery struct {
	Text     string // case-insensitive substring on title OR authors
	MinAvg   *float64
	YearFrom *int
	YearTo   *int
	Sort     string // one of the SortBy constants (default SortByAverage)
	Order    string // "asc" or "desc" (default "desc")
	Page     PageParams
}

// Filter builds the MongoDB filter document for the query.
func (q BookQuery) Filter() bson.M {
	filter := bson.M{}

	if q.Text != "" {
		pattern := bson.M{"$regex": q.Text, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"authors": pattern},
		}
	}

	if q.MinAvg != nil {
		filter["average_rating"] = bson.M{"$gte": *q.MinAvg}
	}

	yearFilter := bson.M{}
	if q.YearFrom != nil {
		yearFilter["$gte"] = *q.YearFrom
	}
	if q.YearTo != nil {
		yearFilter["$lte"] = *q.YearTo
	}
	if len(yearFilter) > 0 {
		filter["original_publication_year"] = yearFilter
	}

	return filter
}

// SortDoc builds the MongoDB sort document for the query.
func (q BookQuery) SortDoc() bson.D {
	field, ok := sortFields[q.Sort]
	if !ok {
		field = sortFields[SortByAverage]
	}

	direction := -1
	if q.Order == "asc" {
		direction = 1
	}

	return bson.D{{Key: field, Value: direction}}
}

// ListBooks returns one page of books matching the query plus the total
// match count ignoring pagination.
func (s *Store) ListBooks(ctx context.Context, q BookQuery) (*Page[domain.Book], error) {
	return paginate[domain.Book](ctx, s.books(), q.Filter(), q.SortDoc(), q.Page)
}

// GetBook looks up a single book by its ObjectID hex string.
// Returns ErrInvalidBookID for a malformed id and ErrBookNotFound when no
// document matches.
func (s *Store) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidBookID
	}

	var book domain.Book
	err = s.books().FindOne(ctx, bson.M{"_id": objectID}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// ListBooksByAuthor returns one page of books whose authors field contains
// the given name, matched case-insensitively.
func (s *Store) ListBooksByAuthor(ctx context.Context, author string, p PageParams) (*Page[domain.Book], error) {
	filter := bson.M{"authors": bson.M{"$regex": author, "$options": "i"}}
	return paginate[domain.Book](ctx, s.books(), filter, nil, p)
}
