package api

import (
	json "github.com/go-json-experiment/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goodbooksapp/goodbooks-server/internal/http/response"
	"github.com/goodbooksapp/goodbooks-server/internal/service"
)

// handleRatingsSummary returns the aggregated rating summary of one book.
func (s *Server) handleRatingsSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookID, err := parseInt64Param(chi.URLParam(r, "book_id"), "Invalid book ID")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	summary, err := s.services.Rating.Summary(ctx, bookID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, summary, s.logger)
}

// handleRateBook upserts a rating keyed by (user_id, book_id). The shared
// secret has already been checked by requireAPIKey.
func (s *Server) handleRateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.RateBookRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	if err := s.services.Rating.RateBook(ctx, req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, MessageResponse{Message: "Rating added/updated successfully"}, s.logger)
}
