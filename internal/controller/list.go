package controller

import (
	"context"
	"slices"
	"sync"
)

// Identifiable is an entity with a server-assigned id.
type Identifiable interface {
	GetID() int64
}

// Source is the remote collection a [ListController] mirrors. D is the
// draft type sent on create.
type Source[T Identifiable, D any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft D) (T, error)
	Delete(ctx context.Context, id int64) error
}

// ListController caches one remote collection for the lifetime of a screen.
type ListController[T Identifiable, D any] struct {
	source Source[T, D]

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	items   []T
	loading bool
	loaded  bool
}

func NewListController[T Identifiable, D any](parent context.Context, source Source[T, D]) *ListController[T, D] {
	ctx, cancel := context.WithCancel(parent)
	return &ListController[T, D]{
		source: source,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Load fetches the collection and replaces the cached one wholesale. On
// failure the previous collection stays.
func (c *ListController[T, D]) Load() error {
	if c.ctx.Err() != nil {
		return ErrClosed
	}

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	items, err := c.source.List(c.ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if c.ctx.Err() != nil {
		return ErrClosed
	}
	if err != nil {
		return err
	}

	c.items = slices.Clone(items)
	if c.items == nil {
		c.items = []T{}
	}
	c.loaded = true
	return nil
}

// Create sends draft and appends exactly the item the server returned.
func (c *ListController[T, D]) Create(draft D) (T, error) {
	var zero T
	if c.ctx.Err() != nil {
		return zero, ErrClosed
	}

	item, err := c.source.Create(c.ctx, draft)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctx.Err() != nil {
		return zero, ErrClosed
	}
	if err != nil {
		return zero, err
	}

	c.items = append(c.items, item)
	return item, nil
}

// Delete removes id from the cache once the server confirmed the delete.
func (c *ListController[T, D]) Delete(id int64) error {
	if c.ctx.Err() != nil {
		return ErrClosed
	}

	err := c.source.Delete(c.ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctx.Err() != nil {
		return ErrClosed
	}
	if err != nil {
		return err
	}

	c.items = slices.DeleteFunc(c.items, func(item T) bool {
		return item.GetID() == id
	})
	return nil
}

// Items returns a copy of the cached collection.
func (c *ListController[T, D]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Find returns the cached item with id.
func (c *ListController[T, D]) Find(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *ListController[T, D]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Loading reports whether a Load is in flight.
func (c *ListController[T, D]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Loaded reports whether at least one Load succeeded.
func (c *ListController[T, D]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Close cancels in-flight requests. It is safe to call more than once.
func (c *ListController[T, D]) Close() {
	c.cancel()
}
