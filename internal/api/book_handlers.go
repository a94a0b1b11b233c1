package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goodbooksapp/goodbooks-server/internal/http/response"
)

// handleListBooks returns a filtered, sorted, paginated book listing.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query, err := parseBookQuery(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	page, err := s.services.Book.ListBooks(ctx, query)
	if err != nil {
		s.logger.Error("Failed to list books", "error", err)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, page, s.logger)
}

// handleGetBook returns a single book by its store object id.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "book_id")

	book, err := s.services.Book.GetBook(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, book, s.logger)
}

// handleAuthorBooks returns paginated books whose authors field contains the
// given name.
func (s *Server) handleAuthorBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	author := chi.URLParam(r, "author_name")

	page, err := s.services.Book.BooksByAuthor(ctx, author, parsePageParams(r))
	if err != nil {
		s.logger.Error("Failed to list author books", "error", err, "author", author)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, page, s.logger)
}
