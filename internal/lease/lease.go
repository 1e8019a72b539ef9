package lease

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Locker hands out short-lived exclusive leases on keys.
type Locker interface {
	// TryAcquire takes the lease on key for ttl. It returns false when somebody else holds it.
	// The returned token identifies this holder when releasing.
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error)
	// Release gives the lease back before it expires, if it is still held with token.
	Release(ctx context.Context, key, token string) error
}

type memoryLease struct {
	token   string
	expires time.Time
}

// MemoryLocker keeps leases in process memory.
type MemoryLocker struct {
	mu     sync.Mutex
	leases map[string]memoryLease
	now    func() time.Time
}

// NewMemoryLocker constructs a MemoryLocker.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{leases: make(map[string]memoryLease), now: time.Now}
}

var _ Locker = (*MemoryLocker)(nil)

// TryAcquire takes the lease on key unless an unexpired lease exists.
func (l *MemoryLocker) TryAcquire(_ context.Context, key string, ttl time.Duration) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if held, ok := l.leases[key]; ok && now.Before(held.expires) {
		return "", false, nil
	}
	token := uuid.NewString()
	l.leases[key] = memoryLease{token: token, expires: now.Add(ttl)}
	l.evictExpired(now)
	return token, true, nil
}

// Release drops the lease on key when it is held with token.
func (l *MemoryLocker) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if held, ok := l.leases[key]; ok && held.token == token {
		delete(l.leases, key)
	}
	return nil
}

func (l *MemoryLocker) evictExpired(now time.Time) {
	for key, held := range l.leases {
		if !now.Before(held.expires) {
			delete(l.leases, key)
		}
	}
}
