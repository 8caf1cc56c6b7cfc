package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/blogem/privacy-toolkit/logger"
	"github.com/blogem/privacy-toolkit/storage"
)

// Storage keys of the persisted collections
const (
	keyPrefix           = "privacy."
	dsrRequestsKey      = keyPrefix + "dsr.requests"
	breachReportsKey    = keyPrefix + "breach.reports"
	breachAssessmentKey = keyPrefix + "breach.assessments"
	breachNoticesKey    = keyPrefix + "breach.notifications"
	dpiaAssessmentsKey  = keyPrefix + "dpia.assessments"
	auditLogKey         = keyPrefix + "audit.log"
)

// collection persists a slice of records as one JSON document under a single key.
// Every mutation reads the full collection, modifies it and writes it back while
// holding the collection lock.
type collection[T any] struct {
	store storage.Adapter
	key   string
	id    func(*T) string
	mu    sync.Mutex
}

func newCollection[T any](store storage.Adapter, key string, id func(*T) string) *collection[T] {
	return &collection[T]{store: store, key: key, id: id}
}

// load reads the collection. A corrupt document yields an empty collection and a warning.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.key, err)
	}
	if !found || raw == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Logger().WithError(err).WithField("key", c.key).Warn("Discarding corrupt collection")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.key, err)
	}
	return nil
}

// all returns every record in insertion order
func (c *collection[T]) all(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// filter returns the records matching keep, in insertion order
func (c *collection[T]) filter(ctx context.Context, keep func(*T) bool) ([]T, error) {
	items, err := c.all(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			matched = append(matched, items[i])
		}
	}
	return matched, nil
}

// get returns the record with the given id, or nil when absent
func (c *collection[T]) get(ctx context.Context, id string) (*T, error) {
	items, err := c.all(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if c.id(&items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// insert appends a record; ids must be unique within the collection
func (c *collection[T]) insert(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	id := c.id(&item)
	for i := range items {
		if c.id(&items[i]) == id {
			return fmt.Errorf("record %s already exists in %s", id, c.key)
		}
	}

	return c.save(ctx, append(items, item))
}

// replace overwrites the record with the same id and reports whether it existed
func (c *collection[T]) replace(ctx context.Context, item T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}

	id := c.id(&item)
	for i := range items {
		if c.id(&items[i]) == id {
			items[i] = item
			return true, c.save(ctx, items)
		}
	}
	return false, nil
}

// update applies change to the record with the given id and saves the collection,
// holding the lock from load to save. Returns nil when the record is absent.
// An error from change aborts the update and is returned as is.
func (c *collection[T]) update(ctx context.Context, id string, change func(*T) error) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if c.id(&items[i]) != id {
			continue
		}
		if err := change(&items[i]); err != nil {
			return nil, err
		}
		if err := c.save(ctx, items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, nil
}

// remove deletes the record with the given id and reports whether it existed
func (c *collection[T]) remove(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}

	for i := range items {
		if c.id(&items[i]) == id {
			return true, c.save(ctx, append(items[:i], items[i+1:]...))
		}
	}
	return false, nil
}
