package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/goodbooksapp/goodbooks-server/internal/errors"
)

func TestStaticKey_ValidateKey(t *testing.T) {
	a := NewStaticKey("secret123")

	assert.NoError(t, a.ValidateKey("secret123"))
}

func TestStaticKey_RejectsWrongKey(t *testing.T) {
	a := NewStaticKey("secret123")

	for _, key := range []string{"", "secret", "secret1234", "SECRET123"} {
		err := a.ValidateKey(key)
		assert.Error(t, err, key)
		assert.True(t, apperrors.Is(err, apperrors.ErrForbidden), key)
	}
}
