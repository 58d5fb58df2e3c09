package auth_test

import (
	"testing"
	"time"

	"github.com/dangerclosesec/catalog/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := tm.Generate("ops@example.com", auth.RoleAdmin)
		require.NoError(t, err)

		claims, err := tm.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "ops@example.com", claims.Actor)
		assert.True(t, claims.IsAdmin())
	})

	t.Run("other roles are not admin", func(t *testing.T) {
		token, err := tm.Generate("viewer", "reader")
		require.NoError(t, err)

		claims, err := tm.Validate(token)
		require.NoError(t, err)
		assert.False(t, claims.IsAdmin())
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := auth.NewTokenManager("other", time.Hour).Generate("ops", auth.RoleAdmin)
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := auth.NewTokenManager("test-secret", -time.Minute).Generate("ops", auth.RoleAdmin)
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.Error(t, err)
	})

	t.Run("actor required", func(t *testing.T) {
		_, err := tm.Generate("  ", auth.RoleAdmin)
		assert.Error(t, err)
	})
}
