package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meeraai/site-backend/internal/position"
)

var ErrNotFound = errors.New("position not found")

// Repository defines persistence operations for positions. List returns
// positions in reverse-chronological order by createdAt.
type Repository interface {
	List(ctx context.Context) ([]*position.Position, error)
	Get(ctx context.Context, id primitive.ObjectID) (*position.Position, error)
	Create(ctx context.Context, p *position.Position) error
	Save(ctx context.Context, p *position.Position) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
