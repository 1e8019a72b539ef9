package lease

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_TryAcquire(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	locker := NewMemoryLocker()
	locker.now = func() time.Time { return now }
	ctx := context.Background()

	token, ok, err := locker.TryAcquire(ctx, "ttd/1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	_, ok, err = locker.TryAcquire(ctx, "ttd/1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "lease is held")

	_, ok, err = locker.TryAcquire(ctx, "ttd/2", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "other keys are independent")

	now = now.Add(time.Minute)
	_, ok, err = locker.TryAcquire(ctx, "ttd/1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "expired lease can be taken")
}

func TestMemoryLocker_Release(t *testing.T) {
	testRelease(t, NewMemoryLocker())
}

func TestMemoryLocker_ReleaseAfterExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	locker := NewMemoryLocker()
	locker.now = func() time.Time { return now }
	ctx := context.Background()

	stale, ok, _ := locker.TryAcquire(ctx, "ttd/1", time.Second)
	require.True(t, ok)
	now = now.Add(2 * time.Second)
	_, ok, _ = locker.TryAcquire(ctx, "ttd/1", time.Minute)
	require.True(t, ok)

	require.NoError(t, locker.Release(ctx, "ttd/1", stale))
	_, ok, err := locker.TryAcquire(ctx, "ttd/1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "an expired holder must not release the new holder's lease")
}

func TestRedisLocker_Release(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	locker, err := NewRedisLocker(context.Background(), addr, os.Getenv("TEST_REDIS_PASSWORD"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = locker.Close() })

	testRelease(t, &prefixedLocker{Locker: locker, prefix: uuid.NewString() + "/"})
}

func testRelease(t *testing.T, locker Locker) {
	ctx := context.Background()

	token, ok, err := locker.TryAcquire(ctx, "ttd/1", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, locker.Release(ctx, "ttd/1", "someone-else"))
	_, ok, err = locker.TryAcquire(ctx, "ttd/1", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "a foreign token does not release the lease")

	require.NoError(t, locker.Release(ctx, "ttd/1", token))
	token, ok, err = locker.TryAcquire(ctx, "ttd/1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, locker.Release(ctx, "ttd/1", token))
}

type prefixedLocker struct {
	Locker
	prefix string
}

func (l *prefixedLocker) TryAcquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	return l.Locker.TryAcquire(ctx, l.prefix+key, ttl)
}

func (l *prefixedLocker) Release(ctx context.Context, key, token string) error {
	return l.Locker.Release(ctx, l.prefix+key, token)
}
