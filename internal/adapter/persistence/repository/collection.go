package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"marmoraria_tech/internal/adapter/persistence/kv"
	"marmoraria_tech/internal/domain/apperrors"
)

// Record is an entity stored in a Collection.
type Record[T any] interface {
	GetID() int
	WithID(id int) T
}

// Patch is a shallow partial update of T.
type Patch[T any] interface {
	Apply(T) T
}

// Collection is an ordered list of records persisted under one substrate key.
//
// Every mutation reads the whole list, changes it and writes it back with the
// version it read. Mutations on the same Collection value are serialized; a
// concurrent writer elsewhere surfaces as a StorageError wrapping
// apperrors.ErrConflict.
type Collection[T Record[T]] struct {
	store kv.Store
	key   string
	seed  func() []T
	mu    sync.Mutex
}

func NewCollection[T Record[T]](store kv.Store, key string, seed func() []T) *Collection[T] {
	if seed == nil {
		seed = func() []T { return []T{} }
	}
	return &Collection[T]{store: store, key: key, seed: seed}
}

// List returns every record. On first use the seed is persisted and returned.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, _, err := c.load(ctx)
	return records, err
}

// GetByID returns the record and whether it exists.
func (c *Collection[T]) GetByID(ctx context.Context, id int) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	records, _, err := c.load(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, r := range records {
		if r.GetID() == id {
			return r, true, nil
		}
	}
	return zero, false, nil
}

// Add assigns id = max(existing ids, 0) + 1, appends and persists.
func (c *Collection[T]) Add(ctx context.Context, record T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	records, version, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	maxID := 0
	for _, r := range records {
		if r.GetID() > maxID {
			maxID = r.GetID()
		}
	}
	stored := record.WithID(maxID + 1)
	if err := c.save(ctx, append(records, stored), version); err != nil {
		return zero, err
	}
	return stored, nil
}

// Update applies patch to the record with id and persists. The bool is false
// when no such record exists; nothing is written then.
func (c *Collection[T]) Update(ctx context.Context, id int, patch Patch[T]) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	records, version, err := c.load(ctx)
	if err != nil {
		return zero, false, err
	}

	for i, r := range records {
		if r.GetID() != id {
			continue
		}
		updated := patch.Apply(r).WithID(id)
		records[i] = updated
		if err := c.save(ctx, records, version); err != nil {
			return zero, false, err
		}
		return updated, true, nil
	}
	return zero, false, nil
}

// Delete removes the record with id. A miss returns false and writes nothing.
func (c *Collection[T]) Delete(ctx context.Context, id int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, version, err := c.load(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]T, 0, len(records))
	for _, r := range records {
		if r.GetID() != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}
	if err := c.save(ctx, kept, version); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Collection[T]) load(ctx context.Context) ([]T, int64, error) {
	e, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, 0, apperrors.NewStorage("get", c.key, err)
	}
	if !found {
		return c.bootstrap(ctx)
	}
	records, err := c.decode(e.Value)
	if err != nil {
		return nil, 0, err
	}
	return records, e.Version, nil
}

func (c *Collection[T]) bootstrap(ctx context.Context) ([]T, int64, error) {
	seed := c.seed()
	raw, err := json.Marshal(seed)
	if err != nil {
		return nil, 0, apperrors.NewStorage("encode", c.key, err)
	}
	version, err := c.store.Put(ctx, c.key, raw, 0)
	if err == nil {
		return seed, version, nil
	}
	if !errors.Is(err, kv.ErrVersionConflict) {
		return nil, 0, apperrors.NewStorage("put", c.key, err)
	}

	// Another process seeded the key first; use what it stored.
	e, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, 0, apperrors.NewStorage("get", c.key, err)
	}
	if !found {
		return nil, 0, apperrors.NewStorage("get", c.key, errors.New("key vanished after bootstrap conflict"))
	}
	records, err := c.decode(e.Value)
	if err != nil {
		return nil, 0, err
	}
	return records, e.Version, nil
}

func (c *Collection[T]) decode(raw []byte) ([]T, error) {
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, apperrors.NewStorage("decode", c.key, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) save(ctx context.Context, records []T, version int64) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return apperrors.NewStorage("encode", c.key, err)
	}
	if _, err := c.store.Put(ctx, c.key, raw, version); err != nil {
		if errors.Is(err, kv.ErrVersionConflict) {
			return apperrors.NewStorage("put", c.key, fmt.Errorf("%w: %w", apperrors.ErrConflict, err))
		}
		return apperrors.NewStorage("put", c.key, err)
	}
	return nil
}
