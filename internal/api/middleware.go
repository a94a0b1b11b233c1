package api

import (
	"net/http"

	"github.com/goodbooksapp/goodbooks-server/internal/http/response"
)

// apiKeyHeader carries the shared secret on write requests.
const apiKeyHeader = "x-api-key"

// requireAPIKey is middleware that validates the shared secret header.
// A missing header is treated the same as a wrong key.
func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(apiKeyHeader)
		if err := s.authenticator.ValidateKey(key); err != nil {
			response.HandleError(w, err, s.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// limitWrites is middleware that rate-limits write requests per client IP.
// Runs after requireAPIKey so a wrong key is always answered with 403.
func (s *Server) limitWrites(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.writeLimiter != nil && !s.writeLimiter.Allow(r.RemoteAddr) {
			response.TooManyRequests(w, "Rate limit exceeded", s.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}
