package contact

import (
	"context"
	"strings"
	"time"

	"courses-backend/internal/db"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:     repo,
		location: location,
	}
}

// Submit stores a new contact message. Identical submissions are stored as
// separate records.
func (s *Service) Submit(ctx context.Context, req CreateRequest) (Message, error) {
	if !s.repo.Available() {
		return Message{}, db.ErrUnavailable
	}

	msg := Message{
		ID:        primitive.NewObjectID().Hex(),
		Name:      req.Name,
		Email:     strings.TrimSpace(req.Email),
		Message:   req.Message,
		Topic:     req.Topic,
		CreatedAt: time.Now().In(s.location),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

func (s *Service) List(ctx context.Context, limit, offset int64) ([]Message, int64, error) {
	if !s.repo.Available() {
		return nil, 0, db.ErrUnavailable
	}
	items, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
