// Package di provides dependency injection configuration for the GoodBooks server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/goodbooksapp/goodbooks-server/internal/config"
	"github.com/goodbooksapp/goodbooks-server/internal/di/providers"
	"github.com/goodbooksapp/goodbooks-server/internal/logger"
	"github.com/goodbooksapp/goodbooks-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Write-path guards
	do.Provide(injector, providers.ProvideAuthenticator)
	do.Provide(injector, providers.ProvideRateLimiter)

	// Business services
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvideTagService)
	do.Provide(injector, providers.ProvideRatingService)
	do.Provide(injector, providers.ProvideToReadService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services. The first provider
// failure (bad config, unreachable database) aborts the bootstrap.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}

	// Business services
	if _, err := do.Invoke[*service.BookService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.TagService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.RatingService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.ToReadService](injector); err != nil {
		return err
	}

	// Server
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}

	return nil
}
