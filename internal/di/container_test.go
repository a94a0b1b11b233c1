package di

import (
	"errors"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"

	"github.com/goodbooksapp/goodbooks-server/internal/config"
)

func TestBootstrap_PropagatesProviderFailure(t *testing.T) {
	injector := do.New()
	do.Provide(injector, func(do.Injector) (*config.Config, error) {
		return nil, errors.New("config load failed")
	})

	err := Bootstrap(injector)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config load failed")
}
