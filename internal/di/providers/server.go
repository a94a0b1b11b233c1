package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/goodbooksapp/goodbooks-server/internal/api"
	"github.com/goodbooksapp/goodbooks-server/internal/auth"
	"github.com/goodbooksapp/goodbooks-server/internal/config"
	"github.com/goodbooksapp/goodbooks-server/internal/logger"
	"github.com/goodbooksapp/goodbooks-server/internal/ratelimit"
	"github.com/goodbooksapp/goodbooks-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	authenticator := do.MustInvoke[auth.Authenticator](i)
	writeLimiter := do.MustInvoke[*ratelimit.KeyedRateLimiter](i)

	services := &api.Services{
		Book:   do.MustInvoke[*service.BookService](i),
		Tag:    do.MustInvoke[*service.TagService](i),
		Rating: do.MustInvoke[*service.RatingService](i),
		ToRead: do.MustInvoke[*service.ToReadService](i),
	}

	handler := api.NewServer(services, authenticator, writeLimiter, cfg.Mongo.Timeout, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
