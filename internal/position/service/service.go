package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meeraai/site-backend/internal/position"
	"github.com/meeraai/site-backend/internal/position/repository"
)

// Service encapsulates position business logic over a Repository.
type Service struct {
	repo repository.Repository
}

func NewService(r repository.Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]*position.Position, error) {
	return s.repo.List(ctx)
}

// Create validates the required fields and the type enumeration, defaults
// requirements to an empty list, stamps timestamps and persists.
func (s *Service) Create(ctx context.Context, p *position.Position) error {
	p.Title = strings.TrimSpace(p.Title)
	p.Department = strings.TrimSpace(p.Department)
	p.Location = strings.TrimSpace(p.Location)
	if err := validate(p); err != nil {
		return err
	}
	if p.Requirements == nil {
		p.Requirements = []string{}
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(ctx, p)
}

// Update loads the existing record, overwrites only the supplied fields
// and persists the merged result. Requirements are kept unchanged when
// omitted from the request.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, fields position.UpdateFields) (*position.Position, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if fields.Title != nil {
		p.Title = strings.TrimSpace(*fields.Title)
	}
	if fields.Department != nil {
		p.Department = strings.TrimSpace(*fields.Department)
	}
	if fields.Location != nil {
		p.Location = strings.TrimSpace(*fields.Location)
	}
	if fields.Type != nil {
		p.Type = *fields.Type
	}
	if fields.Description != nil {
		p.Description = *fields.Description
	}
	if fields.DetailedDescription != nil {
		p.DetailedDescription = *fields.DetailedDescription
	}
	if fields.Requirements != nil {
		p.Requirements = *fields.Requirements
	}
	if err := validate(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete checks existence first; removing an unknown id is a not-found
// error, unlike the blog delete.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func validate(p *position.Position) error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Department == "" {
		return fmt.Errorf("department is required")
	}
	if p.Location == "" {
		return fmt.Errorf("location is required")
	}
	if !position.IsValidType(p.Type) {
		return fmt.Errorf("type must be one of: %s", strings.Join(position.ValidTypes, ", "))
	}
	if p.Description == "" {
		return fmt.Errorf("description is required")
	}
	if p.DetailedDescription == "" {
		return fmt.Errorf("detailedDescription is required")
	}
	return nil
}
