package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadheryan/scrapmarket/model"
	"github.com/muhammadheryan/scrapmarket/repository/session"
	"github.com/stretchr/testify/require"
)

// The Redis client is never initialized in tests, so these exercise the
// in-process fallback store.

func TestRepository_MemoryFallbackRoundtrip(t *testing.T) {
	repo := session.NewRepository()
	ctx := context.Background()

	stored := &model.Session{BuyerID: 7, Email: "buyer@example.com", BackendToken: "backend-token"}
	require.NoError(t, repo.SetSession(ctx, "jti-1", stored, time.Hour))

	got, err := repo.GetSession(ctx, "jti-1")
	require.NoError(t, err)
	require.NotNil(t, got, "session must be retrievable without redis")
	require.Equal(t, uint64(7), got.BuyerID)
	require.Equal(t, "backend-token", got.BackendToken)

	require.NoError(t, repo.DeleteSession(ctx, "jti-1"))
	got, err = repo.GetSession(ctx, "jti-1")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRepository_MemoryFallbackUnknownSession(t *testing.T) {
	repo := session.NewRepository()

	got, err := repo.GetSession(context.Background(), "never-stored")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRepository_MemoryFallbackExpiry(t *testing.T) {
	repo := session.NewRepository()
	ctx := context.Background()

	stored := &model.Session{BuyerID: 7, Email: "buyer@example.com"}
	require.NoError(t, repo.SetSession(ctx, "jti-ttl", stored, time.Nanosecond))

	time.Sleep(5 * time.Millisecond)

	got, err := repo.GetSession(ctx, "jti-ttl")
	require.NoError(t, err)
	require.Nil(t, got, "expired session must not be returned")
}
