package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	t.Run("unknown session is not authenticated", func(t *testing.T) {
		ok, err := repo.IsAuthenticated(ctx, "sess-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set and clear", func(t *testing.T) {
		require.NoError(t, repo.SetAuthenticated(ctx, "sess-1", true))
		ok, err := repo.IsAuthenticated(ctx, "sess-1")
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, repo.SetAuthenticated(ctx, "sess-1", false))
		ok, err = repo.IsAuthenticated(ctx, "sess-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("sessions are independent", func(t *testing.T) {
		require.NoError(t, repo.SetAuthenticated(ctx, "sess-a", true))
		ok, err := repo.IsAuthenticated(ctx, "sess-b")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
