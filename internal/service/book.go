// Package service orchestrates catalog operations between the HTTP layer and the store.
package service

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/goodbooksapp/goodbooks-server/internal/errors"

	"github.com/goodbooksapp/goodbooks-server/internal/domain"
	"github.com/goodbooksapp/goodbooks-server/internal/store"
)

// BookStore is the store surface the book service depends on.
type BookStore interface {
	ListBooks(ctx context.Context, q store.BookQuery) (*store.Page[domain.Book], error)
	GetBook(ctx context.Context, id string) (*domain.Book, error)
	ListBooksByAuthor(ctx context.Context, author string, p store.PageParams) (*store.Page[domain.Book], error)
}

// BookService serves book listings and lookups.
type BookService struct {
	store  BookStore
	logger *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store BookStore, logger *slog.Logger) *BookService {
	return &BookService{
		store:  store,
		logger: logger,
	}
}

// ListBooks returns a filtered, sorted page of books.
func (s *BookService) ListBooks(ctx context.Context, q store.BookQuery) (*store.Page[domain.Book], error) {
	return s.store.ListBooks(ctx, q)
}

// GetBook returns a single book by its ObjectID hex string.
func (s *BookService) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	book, err := s.store.GetBook(ctx, id)
	if errors.Is(err, store.ErrInvalidBookID) {
		return nil, apperrors.Validation("Invalid book ID")
	}
	if errors.Is(err, store.ErrBookNotFound) {
		return nil, apperrors.NotFound("Book not found")
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

// BooksByAuthor returns a page of books matching the author name substring.
func (s *BookService) BooksByAuthor(ctx context.Context, author string, p store.PageParams) (*store.Page[domain.Book], error) {
	return s.store.ListBooksByAuthor(ctx, author, p)
}
