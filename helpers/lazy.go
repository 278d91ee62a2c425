package helpers

import (
	"sync"
	"sync/atomic"
)

// Lazy builds a value on first use and keeps it for the life of the process.
// A failed build is not remembered: the next Get tries again.
type Lazy[T any] struct {
	mu    sync.Mutex
	value atomic.Pointer[T]
	fn    func() (T, error)
}

func NewLazy[T any](fn func() (T, error)) *Lazy[T] {
	return &Lazy[T]{fn: fn}
}

func (o *Lazy[T]) Get() (T, error) {
	if value := o.value.Load(); value != nil {
		return *value, nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if value := o.value.Load(); value != nil {
		return *value, nil
	}

	v, err := o.fn()
	if err != nil {
		return v, err
	}
	o.value.Store(&v)
	return v, nil
}
