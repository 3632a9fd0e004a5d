package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MBahyeldin/online-shoping/domain"
)

func openTestRedis(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client)
}

func TestRedisStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestRedis(t)

	user := domain.User{ID: "u1", FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Phone: "+12025551234"}
	require.NoError(t, store.Save(ctx, "tok-abc", &user))

	token, loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
	assert.Equal(t, user, *loaded)
}

func TestRedisStore_LoadEmpty(t *testing.T) {
	store := openTestRedis(t)

	_, _, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRedisStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := openTestRedis(t)

	require.NoError(t, store.Save(ctx, "tok", &domain.User{ID: "u1"}))
	require.NoError(t, store.Clear(ctx))

	_, _, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRedisStore_TokenWithoutUserTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := NewRedisStore(client)

	// Simulate a half-written session: token present, user missing.
	require.NoError(t, client.Set(ctx, "storefront:session:token", "orphan", 0).Err())

	_, _, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
