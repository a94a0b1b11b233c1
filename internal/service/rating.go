package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/goodbooksapp/goodbooks-server/internal/domain"
	apperrors "github.com/goodbooksapp/goodbooks-server/internal/errors"
	"github.com/goodbooksapp/goodbooks-server/internal/store"
	"github.com/goodbooksapp/goodbooks-server/internal/validation"
)

// RatingStore is the store surface the rating service depends on.
type RatingStore interface {
	SummarizeRatings(ctx context.Context, bookID int64) (*domain.RatingsSummary, error)
	UpsertRating(ctx context.Context, r domain.Rating) error
}

// RateBookRequest is a validated rating submission.
type RateBookRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
	BookID int64 `json:"book_id" validate:"required"`
	Rating int   `json:"rating" validate:"required,gte=1,lte=5"`
}

// RatingService serves rating summaries and upserts.
type RatingService struct {
	store     RatingStore
	validator *validation.Validator
	logger    *slog.Logger
}

// NewRatingService creates a new rating service.
func NewRatingService(store RatingStore, logger *slog.Logger) *RatingService {
	return &RatingService{
		store:     store,
		validator: validation.New(),
		logger:    logger,
	}
}

// Summary aggregates all ratings of a book. A book with zero rating rows is
// reported as not found (indistinguishable from an unknown book id).
func (s *RatingService) Summary(ctx context.Context, bookID int64) (*domain.RatingsSummary, error) {
	summary, err := s.store.SummarizeRatings(ctx, bookID)
	if errors.Is(err, store.ErrNoRatings) {
		return nil, apperrors.NotFound("No ratings found")
	}
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// RateBook upserts a rating keyed by (user_id, book_id). Both ids are
// required and the rating value is constrained to 1-5 here at the API
// boundary; the ingest path does not validate it.
func (s *RatingService) RateBook(ctx context.Context, req RateBookRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return err
	}

	rating := domain.Rating{
		UserID: req.UserID,
		BookID: req.BookID,
		Rating: req.Rating,
	}
	if err := s.store.UpsertRating(ctx, rating); err != nil {
		return err
	}

	s.logger.Info("rating upserted", "user_id", req.UserID, "book_id", req.BookID, "rating", req.Rating)
	return nil
}
