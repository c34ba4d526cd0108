package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meeraai/site-backend/internal/blog"
)

var (
	ErrNotFound      = errors.New("blog post not found")
	ErrDuplicateSlug = errors.New("slug already exists")
)

// Repository defines persistence operations for blog posts. List returns
// posts in reverse-chronological order by date.
type Repository interface {
	List(ctx context.Context) ([]*blog.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*blog.BlogPost, error)
	Create(ctx context.Context, post *blog.BlogPost) error
	Update(ctx context.Context, id primitive.ObjectID, fields blog.UpdateFields) (*blog.BlogPost, error)
	// Delete removes a post by id. Removing an absent id is not an error.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
