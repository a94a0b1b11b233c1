package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goodbooksapp/goodbooks-server/internal/http/response"
)

// handleUserToRead returns a page of the user's to-read shelf.
func (s *Server) handleUserToRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := parseInt64Param(chi.URLParam(r, "user_id"), "Invalid user ID")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	page, err := s.services.ToRead.ListForUser(ctx, userID, parsePageParams(r))
	if err != nil {
		s.logger.Error("Failed to list to-read shelf", "error", err, "user_id", userID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, page, s.logger)
}
