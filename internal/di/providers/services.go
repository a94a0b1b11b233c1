package providers

import (
	"github.com/samber/do/v2"

	"github.com/goodbooksapp/goodbooks-server/internal/auth"
	"github.com/goodbooksapp/goodbooks-server/internal/config"
	"github.com/goodbooksapp/goodbooks-server/internal/logger"
	"github.com/goodbooksapp/goodbooks-server/internal/ratelimit"
	"github.com/goodbooksapp/goodbooks-server/internal/service"
)

// ProvideAuthenticator provides the shared-secret write-path authenticator.
func ProvideAuthenticator(i do.Injector) (auth.Authenticator, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return auth.NewStaticKey(cfg.Auth.APIKey), nil
}

// ProvideRateLimiter provides the per-client limiter for the write path.
func ProvideRateLimiter(i do.Injector) (*ratelimit.KeyedRateLimiter, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return ratelimit.New(cfg.Auth.RatingRPS, cfg.Auth.RatingBurst), nil
}

// ProvideBookService provides the book catalog service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(storeHandle.Store, log.Logger), nil
}

// ProvideTagService provides the tag service.
func ProvideTagService(i do.Injector) (*service.TagService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTagService(storeHandle.Store, log.Logger), nil
}

// ProvideRatingService provides the rating service.
func ProvideRatingService(i do.Injector) (*service.RatingService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRatingService(storeHandle.Store, log.Logger), nil
}

// ProvideToReadService provides the to-read list service.
func ProvideToReadService(i do.Injector) (*service.ToReadService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewToReadService(storeHandle.Store, log.Logger), nil
}
