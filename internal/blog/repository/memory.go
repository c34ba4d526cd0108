package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meeraai/site-backend/internal/blog"
)

// MemoryRepo is a simple in-memory repository used for unit tests. It
// mirrors the store's contract, including slug uniqueness and the
// string-ordered date sort.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[primitive.ObjectID]*blog.BlogPost
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[primitive.ObjectID]*blog.BlogPost)}
}

func (m *MemoryRepo) List(ctx context.Context) ([]*blog.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*blog.BlogPost, 0, len(m.store))
	for _, p := range m.store {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (m *MemoryRepo) GetBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.store {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) Create(ctx context.Context, post *blog.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.store {
		if p.Slug == post.Slug {
			return ErrDuplicateSlug
		}
	}
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	cp := *post
	m.store[post.ID] = &cp
	return nil
}

func (m *MemoryRepo) Update(ctx context.Context, id primitive.ObjectID, fields blog.UpdateFields) (*blog.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	if fields.Slug != nil {
		for oid, other := range m.store {
			if oid != id && other.Slug == *fields.Slug {
				return nil, ErrDuplicateSlug
			}
		}
		p.Slug = *fields.Slug
	}
	if fields.Title != nil {
		p.Title = *fields.Title
	}
	if fields.Content != nil {
		p.Content = *fields.Content
	}
	if fields.Excerpt != nil {
		p.Excerpt = *fields.Excerpt
	}
	if fields.Author != nil {
		p.Author = *fields.Author
	}
	if fields.Category != nil {
		p.Category = *fields.Category
	}
	if fields.Image != nil {
		p.Image = *fields.Image
	}
	if fields.Date != nil {
		p.Date = *fields.Date
	}
	if fields.Tags != nil {
		p.Tags = *fields.Tags
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}
