package subscriptions

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// memoryRepo applies the same $set / $setOnInsert split as the Mongo upsert.
type memoryRepo struct {
	mu        sync.Mutex
	available bool
	failWith  error
	dupOnce   bool
	byEmail   map[string]Subscription
	upserts   int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{available: true, byEmail: make(map[string]Subscription)}
}

func (m *memoryRepo) Available() bool {
	return m.available
}

func (m *memoryRepo) Upsert(ctx context.Context, sub Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	if m.failWith != nil {
		return m.failWith
	}
	if m.dupOnce {
		m.dupOnce = false
		return ErrDuplicate
	}
	existing, ok := m.byEmail[sub.Email]
	if !ok {
		m.byEmail[sub.Email] = sub
		return nil
	}
	existing.Name = sub.Name
	existing.Interests = sub.Interests
	existing.UpdatedAt = sub.UpdatedAt
	m.byEmail[sub.Email] = existing
	return nil
}

func (m *memoryRepo) List(ctx context.Context, limit, offset int64) ([]Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	items := make([]Subscription, 0, len(m.byEmail))
	for _, s := range m.byEmail {
		items = append(items, s)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].UpdatedAt.After(items[j].UpdatedAt) })
	if offset >= int64(len(items)) {
		return []Subscription{}, nil
	}
	items = items[offset:]
	if int64(len(items)) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (m *memoryRepo) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byEmail)), nil
}

var errStoreDown = errors.New("server selection timeout")
