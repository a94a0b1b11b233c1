package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goodbooksapp/goodbooks-server/internal/domain"
	"github.com/goodbooksapp/goodbooks-server/internal/http/response"
)

// TagListResponse contains the unpaginated tag list of one book.
type TagListResponse struct {
	Items []domain.Tag `json:"items"`
	Total int          `json:"total"`
}

// handleBookTags returns the tags attached to a goodreads book id.
func (s *Server) handleBookTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookID, err := parseInt64Param(chi.URLParam(r, "book_id"), "Invalid book ID")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	tags, err := s.services.Tag.TagsForBook(ctx, bookID)
	if err != nil {
		s.logger.Error("Failed to get book tags", "error", err, "book_id", bookID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, TagListResponse{Items: tags, Total: len(tags)}, s.logger)
}

// handleListTags returns all tags with their book counts, paginated.
func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := s.services.Tag.ListTags(ctx, parsePageParams(r))
	if err != nil {
		s.logger.Error("Failed to list tags", "error", err)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, page, s.logger)
}
