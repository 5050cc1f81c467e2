package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/construction-site/internal/auth"
)

func newStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb, time.Hour), mr
}

func TestStoreLifecycle(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()
	p := auth.Principal{AdminID: 3, Email: "a@example.com", Role: "editor"}

	id, err := store.Create(ctx, p)
	require.NoError(t, err)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	mr.FastForward(30 * time.Minute)
	_, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+id))

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreExpiry(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, auth.Principal{AdminID: 1})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRejectsMalformedID(t *testing.T) {
	store, _ := newStore(t)

	_, err := store.Get(context.Background(), "../../etc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDeleteUser(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	a1, err := store.Create(ctx, auth.Principal{AdminID: 4, Role: "admin"})
	require.NoError(t, err)
	a2, err := store.Create(ctx, auth.Principal{AdminID: 4, Role: "admin"})
	require.NoError(t, err)
	other, err := store.Create(ctx, auth.Principal{AdminID: 5, Role: "editor"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteUser(ctx, 4))

	for _, id := range []string{a1, a2} {
		_, err := store.Get(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.False(t, mr.Exists(userKey(4)))

	_, err = store.Get(ctx, other)
	assert.NoError(t, err)

	require.NoError(t, store.DeleteUser(ctx, 99))
}
