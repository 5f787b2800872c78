package store

import (
	"context"
	"sync"

	"github.com/KoruApps/courseboard-go/internal/enrollment"
)

// MemoryStore is an in-process SemesterStore used for the demo server
// and tests. Snapshots are cloned on the way in and out so callers can
// never mutate stored state in place.
type MemoryStore struct {
	mu        sync.RWMutex
	semesters map[string]enrollment.Semester
	order     []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{semesters: make(map[string]enrollment.Semester)}
}

// List returns all semesters in insertion order.
func (m *MemoryStore) List(ctx context.Context) ([]enrollment.Semester, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]enrollment.Semester, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.semesters[id].Clone())
	}
	return out, nil
}

// Get returns a clone of the stored semester.
func (m *MemoryStore) Get(ctx context.Context, id string) (enrollment.Semester, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sem, ok := m.semesters[id]
	if !ok {
		return enrollment.Semester{}, ErrNotFound
	}
	return sem.Clone(), nil
}

// Save inserts or replaces the semester snapshot.
func (m *MemoryStore) Save(ctx context.Context, sem enrollment.Semester) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.semesters[sem.ID]; !exists {
		m.order = append(m.order, sem.ID)
	}
	m.semesters[sem.ID] = sem.Clone()
	return nil
}

// Delete removes a semester; unknown IDs are ignored.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.semesters[id]; !exists {
		return nil
	}
	delete(m.semesters, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
