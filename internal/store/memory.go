package store

import (
	"context"
	"sync"

	"github.com/fabiandarga/employee-import/internal/employee"
)

// Memory is an in-memory Store. It exists for tests and local
// experimentation; it mirrors the Postgres store's id assignment.
type Memory struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]employee.Record
	order  []int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		nextID: 1,
		rows:   make(map[int64]employee.Record),
	}
}

// Insert stores one record and returns its assigned id.
func (m *Memory) Insert(_ context.Context, rec employee.Record) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(rec), nil
}

// InsertMany stores records in order. The in-memory store has no failure
// modes, so the all-or-nothing contract is trivially satisfied.
func (m *Memory) InsertMany(_ context.Context, recs []employee.Record) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, m.insertLocked(rec))
	}
	return ids, nil
}

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error {
	return nil
}

// Get returns a stored record by id.
func (m *Memory) Get(id int64) (employee.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.rows[id]
	return rec, ok
}

// All returns stored records in insertion order.
func (m *Memory) All() []employee.Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]employee.Record, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rows[id])
	}
	return out
}

func (m *Memory) insertLocked(rec employee.Record) int64 {
	id := m.nextID
	m.nextID++
	m.rows[id] = rec
	m.order = append(m.order, id)
	return id
}
