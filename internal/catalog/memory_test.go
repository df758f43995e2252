package catalog

import (
	"context"
	"errors"
	"sync"
)

// memoryRepo mimics the Mongo collections closely enough for seeding tests:
// _id and category slug are unique, reads hide ids.
type memoryRepo struct {
	mu         sync.Mutex
	available  bool
	failCount  error
	categories []CourseCategory
	staff      []StaffMember
	inserts    int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{available: true}
}

func (m *memoryRepo) Available() bool {
	return m.available
}

func (m *memoryRepo) CountCategories(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCount != nil {
		return 0, m.failCount
	}
	return int64(len(m.categories)), nil
}

func (m *memoryRepo) InsertCategory(ctx context.Context, item CourseCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if (item.ID != "" && c.ID == item.ID) || c.Slug == item.Slug {
			return ErrDuplicate
		}
	}
	m.categories = append(m.categories, item)
	m.inserts++
	return nil
}

func (m *memoryRepo) ListCategories(ctx context.Context) ([]CourseCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CourseCategory, 0, len(m.categories))
	for _, c := range m.categories {
		c.ID = ""
		out = append(out, c)
	}
	return out, nil
}

func (m *memoryRepo) FindCategoryBySlug(ctx context.Context, slug string) (CourseCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.Slug == slug {
			c.ID = ""
			return c, nil
		}
	}
	return CourseCategory{}, ErrNotFound
}

func (m *memoryRepo) CountStaff(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCount != nil {
		return 0, m.failCount
	}
	return int64(len(m.staff)), nil
}

func (m *memoryRepo) InsertStaff(ctx context.Context, item StaffMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.staff {
		if item.ID != "" && s.ID == item.ID {
			return ErrDuplicate
		}
	}
	m.staff = append(m.staff, item)
	m.inserts++
	return nil
}

func (m *memoryRepo) ListStaff(ctx context.Context) ([]StaffMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]StaffMember, 0, len(m.staff))
	for _, s := range m.staff {
		s.ID = ""
		out = append(out, s)
	}
	return out, nil
}

var errStoreDown = errors.New("connection refused")
