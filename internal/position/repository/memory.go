package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meeraai/site-backend/internal/position"
)

// MemoryRepo is a simple in-memory repository used for unit tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[primitive.ObjectID]*position.Position
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[primitive.ObjectID]*position.Position)}
}

func (m *MemoryRepo) List(ctx context.Context) ([]*position.Position, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*position.Position, 0, len(m.store))
	for _, p := range m.store {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id primitive.ObjectID) (*position.Position, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryRepo) Create(ctx context.Context, p *position.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	cp := *p
	m.store[p.ID] = &cp
	return nil
}

func (m *MemoryRepo) Save(ctx context.Context, p *position.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[p.ID]; !ok {
		return ErrNotFound
	}
	cp := *p
	m.store[p.ID] = &cp
	return nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
