package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"courses-backend/internal/db"
	"courses-backend/internal/metrics"
	"courses-backend/internal/utils"
)

var ErrNotFound = errors.New("category not found")

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// ListCategories seeds the category collection when empty and returns its
// contents. Without a database it returns an empty list.
func (s *Service) ListCategories(ctx context.Context) ([]CourseCategory, error) {
	if !s.repo.Available() {
		return []CourseCategory{}, nil
	}
	if _, err := s.seedCategories(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListCategories(ctx)
}

func (s *Service) GetCategory(ctx context.Context, slug string) (CourseCategory, error) {
	slug = strings.TrimSpace(slug)
	if !s.repo.Available() {
		return CourseCategory{}, ErrNotFound
	}
	if _, err := s.seedCategories(ctx); err != nil {
		return CourseCategory{}, err
	}
	return s.repo.FindCategoryBySlug(ctx, slug)
}

func (s *Service) ListStaff(ctx context.Context) ([]StaffMember, error) {
	if !s.repo.Available() {
		return []StaffMember{}, nil
	}
	if _, err := s.seedStaff(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListStaff(ctx)
}

// Seed runs both seeding passes and reports how many records were written.
func (s *Service) Seed(ctx context.Context) (SeedReport, error) {
	if !s.repo.Available() {
		return SeedReport{}, db.ErrUnavailable
	}
	var report SeedReport
	var err error
	if report.Categories, err = s.seedCategories(ctx); err != nil {
		return report, err
	}
	if report.Staff, err = s.seedStaff(ctx); err != nil {
		return report, err
	}
	return report, nil
}

func (s *Service) seedCategories(ctx context.Context) (int, error) {
	seed := CategorySeed()
	for i := range seed {
		seed[i].ID = seedID(db.CourseCategories, seed[i].Slug)
	}
	n, err := ensureSeeded(ctx, s.repo.CountCategories, s.repo.InsertCategory, seed)
	s.recordSeed(db.CourseCategories, n, err)
	return n, err
}

func (s *Service) seedStaff(ctx context.Context) (int, error) {
	seed := StaffSeed()
	for i := range seed {
		seed[i].ID = seedID(db.Staff, utils.Slugify(seed[i].Name))
	}
	n, err := ensureSeeded(ctx, s.repo.CountStaff, s.repo.InsertStaff, seed)
	s.recordSeed(db.Staff, n, err)
	return n, err
}

func (s *Service) recordSeed(collection string, inserted int, err error) {
	if inserted > 0 {
		metrics.SeededRecords.WithLabelValues(collection).Add(float64(inserted))
		s.log.Info("catalog seed: inserted", slog.String("collection", collection), slog.Int("count", inserted))
	}
	if err != nil {
		s.log.Error("catalog seed: failed", slog.String("collection", collection), slog.String("error", err.Error()))
	}
}

// ensureSeeded writes seed into an empty collection, one insert per record in
// order, and returns how many inserts took effect. A non-empty collection is
// left untouched.
//
// Seed records carry deterministic ids, so two callers that both observe an
// empty collection collide on _id instead of writing duplicate rows. The
// colliding insert is skipped. This replaces the plain check-then-insert
// sequence, which could seed the same collection twice under concurrent
// first requests.
func ensureSeeded[T any](
	ctx context.Context,
	count func(context.Context) (int64, error),
	insert func(context.Context, T) error,
	seed []T,
) (int, error) {
	existing, err := count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	inserted := 0
	for _, item := range seed {
		if err := insert(ctx, item); err != nil {
			if errors.Is(err, ErrDuplicate) {
				continue
			}
			return inserted, fmt.Errorf("insert seed record: %w", err)
		}
		inserted++
	}
	return inserted, nil
}

func seedID(collection, key string) string {
	return "seed:" + collection + ":" + key
}
