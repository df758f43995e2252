package subscriptions

import (
	"context"
	"errors"
	"strings"
	"time"

	"courses-backend/internal/db"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo     Repository
	location *time.Location
	now      func() time.Time
}

func NewService(repo Repository, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:     repo,
		location: location,
		now:      time.Now,
	}
}

// Subscribe creates or refreshes the subscription for req.Email. Repeated
// calls with the same address leave exactly one record whose _id and
// created_at come from the first call.
func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) error {
	if !s.repo.Available() {
		return db.ErrUnavailable
	}

	now := s.now().In(s.location)
	sub := Subscription{
		ID:        primitive.NewObjectID().Hex(),
		Email:     NormalizeEmail(req.Email),
		Name:      trimmedOrNil(req.Name),
		Interests: normalizeStringList(req.Interests),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Upsert(ctx, sub)
	if errors.Is(err, ErrDuplicate) {
		// A concurrent upsert inserted the email first; this pass matches it.
		err = s.repo.Upsert(ctx, sub)
	}
	return err
}

func (s *Service) List(ctx context.Context, limit, offset int64) ([]Subscription, int64, error) {
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

// NormalizeEmail trims the address and lower-cases its domain part. The local
// part is kept as given.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + strings.ToLower(email[at:])
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizeStringList(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
