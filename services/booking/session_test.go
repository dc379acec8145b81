package booking

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panditseva/models"
)

func testSessionStore(t *testing.T) *RedisSessionStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSessionStore(client, 30*time.Minute)
}

func sampleSession() models.SearchSession {
	city := "Kolkata"
	puja := "Ganesh Puja"
	return models.SearchSession{
		SessionID: "sess-123",
		Request:   models.PujaRequest{PujaType: &puja, City: &city},
		Ranked: []models.RankedPandit{
			{ID: 3, Name: "Pandit Banerjee 3", City: "Siliguri", Fee: 700, Rating: 4.5},
			{ID: 46, Name: "Pandit Kolkata 46", City: "Kolkata", Fee: 1000, Rating: 4.6},
		},
	}
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := testSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession()))

	got, err := store.Get(ctx, "sess-123")
	require.NoError(t, err)
	assert.Equal(t, "sess-123", got.SessionID)
	require.NotNil(t, got.Request.PujaType)
	assert.Equal(t, "Ganesh Puja", *got.Request.PujaType)
	require.Len(t, got.Ranked, 2)
	assert.Equal(t, 46, got.Ranked[1].ID)
}

func TestSessionStoreMissing(t *testing.T) {
	store := testSessionStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreDelete(t *testing.T) {
	store := testSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession()))
	require.NoError(t, store.Delete(ctx, "sess-123"))

	_, err := store.Get(ctx, "sess-123")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisSessionStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession()))

	mr.FastForward(2 * time.Minute)
	_, err := store.Get(ctx, "sess-123")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
