package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meeraai/site-backend/internal/blog"
	"github.com/meeraai/site-backend/internal/blog/repository"
)

// Service encapsulates blog business logic over a Repository.
type Service struct {
	repo repository.Repository
}

func NewService(r repository.Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]*blog.BlogPost, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create stamps the date server-side (long human-readable form) regardless
// of any caller-supplied value, then persists the post.
func (s *Service) Create(ctx context.Context, post *blog.BlogPost) error {
	post.Date = time.Now().Format("January 2, 2006")
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return s.repo.Create(ctx, post)
}

func (s *Service) Update(ctx context.Context, id primitive.ObjectID, fields blog.UpdateFields) (*blog.BlogPost, error) {
	return s.repo.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
