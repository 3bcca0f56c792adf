package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/alexanderramin/athlog/internal/repository"
)

type bodyweightService struct {
	bodyweights repository.BodyweightRepo
}

func NewBodyweightService(bodyweights repository.BodyweightRepo) BodyweightService {
	return &bodyweightService{bodyweights: bodyweights}
}

func (s *bodyweightService) Add(ctx context.Context, weight float64, ts time.Time) (*domain.BodyweightEntry, error) {
	if weight <= 0 {
		return nil, fmt.Errorf("bodyweight must be positive: %w", ErrInvalidInput)
	}
	entry := &domain.BodyweightEntry{Timestamp: ts.UTC(), Weight: weight}
	if err := s.bodyweights.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *bodyweightService) Latest(ctx context.Context) (*domain.BodyweightEntry, error) {
	return s.bodyweights.Latest(ctx)
}

func (s *bodyweightService) List(ctx context.Context, limit int) ([]*domain.BodyweightEntry, error) {
	if limit < 1 {
		limit = 10
	}
	return s.bodyweights.List(ctx, limit)
}

func (s *bodyweightService) Delete(ctx context.Context, id int64) error {
	return s.bodyweights.Delete(ctx, id)
}
