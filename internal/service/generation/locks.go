package generation

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// Locks holds one lock per content type. At most one generation run per type
// is in flight within the process.
type Locks struct {
	mu  sync.Mutex
	sem map[domain.ContentType]chan struct{}
}

// NewLocks creates an empty lock set.
func NewLocks() *Locks {
	return &Locks{sem: make(map[domain.ContentType]chan struct{})}
}

func (l *Locks) get(ct domain.ContentType) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.sem[ct]
	if !ok {
		ch = make(chan struct{}, 1)
		l.sem[ct] = ch
	}
	return ch
}

// Do waits for the lock of ct and runs fn while holding it. It returns the
// context error if ctx ends first.
func (l *Locks) Do(ctx context.Context, ct domain.ContentType, fn func(ctx context.Context) error) error {
	ch := l.get(ct)
	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-ch }()

	return fn(ctx)
}

// TryDo runs fn only if no run for ct is in progress. It reports whether fn ran.
func (l *Locks) TryDo(ctx context.Context, ct domain.ContentType, fn func(ctx context.Context) error) (bool, error) {
	ch := l.get(ct)
	select {
	case ch <- struct{}{}:
	default:
		return false, nil
	}
	defer func() { <-ch }()

	return true, fn(ctx)
}

// Busy reports whether a run for ct is in progress.
func (l *Locks) Busy(ct domain.ContentType) bool {
	return len(l.get(ct)) > 0
}
