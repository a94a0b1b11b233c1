package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/goodbooksapp/goodbooks-server/internal/auth"
	"github.com/goodbooksapp/goodbooks-server/internal/domain"
	"github.com/goodbooksapp/goodbooks-server/internal/ratelimit"
	"github.com/goodbooksapp/goodbooks-server/internal/service"
	"github.com/goodbooksapp/goodbooks-server/internal/store"
)

const testAPIKey = "test-secret"

// fakeBookStore implements service.BookStore in memory.
type fakeBookStore struct {
	books     []domain.Book
	lastQuery store.BookQuery
}

func (f *fakeBookStore) ListBooks(_ context.Context, q store.BookQuery) (*store.Page[domain.Book], error) {
	f.lastQuery = q
	q.Page.Normalize()
	return &store.Page[domain.Book]{
		Items:    f.books,
		Page:     q.Page.Page,
		PageSize: q.Page.PageSize,
		Total:    int64(len(f.books)),
	}, nil
}

func (f *fakeBookStore) GetBook(_ context.Context, id string) (*domain.Book, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrInvalidBookID
	}
	for i := range f.books {
		if f.books[i].ID == objectID {
			return &f.books[i], nil
		}
	}
	return nil, store.ErrBookNotFound
}

func (f *fakeBookStore) ListBooksByAuthor(_ context.Context, author string, p store.PageParams) (*store.Page[domain.Book], error) {
	p.Normalize()
	matches := []domain.Book{}
	for _, b := range f.books {
		if strings.Contains(strings.ToLower(b.Authors), strings.ToLower(author)) {
			matches = append(matches, b)
		}
	}
	return &store.Page[domain.Book]{
		Items:    matches,
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    int64(len(matches)),
	}, nil
}

// fakeTagStore implements service.TagStore in memory.
type fakeTagStore struct {
	bookTags map[int64][]domain.Tag
	tags     []domain.TagWithCount
}

func (f *fakeTagStore) TagsForBook(_ context.Context, goodreadsBookID int64) ([]domain.Tag, error) {
	tags := f.bookTags[goodreadsBookID]
	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}

func (f *fakeTagStore) ListTagsWithCounts(_ context.Context, p store.PageParams) (*store.Page[domain.TagWithCount], error) {
	p.Normalize()
	start := int(p.Skip())
	if start > len(f.tags) {
		start = len(f.tags)
	}
	end := start + p.PageSize
	if end > len(f.tags) {
		end = len(f.tags)
	}
	return &store.Page[domain.TagWithCount]{
		Items:    f.tags[start:end],
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    int64(len(f.tags)),
	}, nil
}

// fakeRatingStore implements service.RatingStore in memory.
type fakeRatingStore struct {
	summaries map[int64]*domain.RatingsSummary
	upserts   map[[2]int64]int
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{
		summaries: map[int64]*domain.RatingsSummary{},
		upserts:   map[[2]int64]int{},
	}
}

func (f *fakeRatingStore) SummarizeRatings(_ context.Context, bookID int64) (*domain.RatingsSummary, error) {
	summary, ok := f.summaries[bookID]
	if !ok {
		return nil, store.ErrNoRatings
	}
	return summary, nil
}

func (f *fakeRatingStore) UpsertRating(_ context.Context, r domain.Rating) error {
	f.upserts[[2]int64{r.UserID, r.BookID}] = r.Rating
	return nil
}

// fakeToReadStore implements service.ToReadStore in memory.
type fakeToReadStore struct {
	entries map[int64][]domain.ToRead
}

func (f *fakeToReadStore) ListToRead(_ context.Context, userID int64, p store.PageParams) (*store.Page[domain.ToRead], error) {
	p.Normalize()
	entries := f.entries[userID]
	if entries == nil {
		entries = []domain.ToRead{}
	}
	return &store.Page[domain.ToRead]{
		Items:    entries,
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    int64(len(entries)),
	}, nil
}

// testServer bundles the server under test with its fake stores.
type testServer struct {
	server  *Server
	books   *fakeBookStore
	tags    *fakeTagStore
	ratings *fakeRatingStore
	toRead  *fakeToReadStore
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerWithLimiter(t, nil)
}

func setupTestServerWithLimiter(t *testing.T, limiter *ratelimit.KeyedRateLimiter) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	books := &fakeBookStore{}
	tags := &fakeTagStore{bookTags: map[int64][]domain.Tag{}}
	ratings := newFakeRatingStore()
	toRead := &fakeToReadStore{entries: map[int64][]domain.ToRead{}}

	services := &Services{
		Book:   service.NewBookService(books, logger),
		Tag:    service.NewTagService(tags, logger),
		Rating: service.NewRatingService(ratings, logger),
		ToRead: service.NewToReadService(toRead, logger),
	}

	server := NewServer(services, auth.NewStaticKey(testAPIKey), limiter, 5*time.Second, logger)

	return &testServer{
		server:  server,
		books:   books,
		tags:    tags,
		ratings: ratings,
		toRead:  toRead,
	}
}

// get performs a GET request against the server under test.
func (ts *testServer) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.server.ServeHTTP(rec, req)
	return rec
}

// post performs a POST request with a JSON body and optional API key header.
func (ts *testServer) post(path, body, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set(apiKeyHeader, apiKey)
	}
	rec := httptest.NewRecorder()
	ts.server.ServeHTTP(rec, req)
	return rec
}
