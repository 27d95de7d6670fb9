package services

import (
	"context"

	"holdings-backend/internal/models"
	"holdings-backend/internal/repositories"
)

// holdingService implements the HoldingService interface
type holdingService struct {
	repo repositories.HoldingRepository
}

// NewHoldingService creates a new holding service
func NewHoldingService(repo repositories.HoldingRepository) HoldingService {
	return &holdingService{repo: repo}
}

// CreateHolding applies "NA" defaults for blank optional fields, inserts
// the holding and returns the assigned id. Symbol uniqueness is not
// checked here; the handler scans the full list before calling.
func (s *holdingService) CreateHolding(ctx context.Context, h *models.Holding) (string, error) {
	h.ApplyDefaults()
	if err := s.repo.Create(ctx, h); err != nil {
		return "", err
	}
	return h.ID, nil
}

// GetHolding returns the holding or nil when no record matches.
func (s *holdingService) GetHolding(ctx context.Context, id string) (*models.Holding, error) {
	return s.repo.GetByID(ctx, id)
}

// ListHoldings returns all holdings in store order.
func (s *holdingService) ListHoldings(ctx context.Context) ([]*models.Holding, error) {
	return s.repo.List(ctx)
}

// ListHoldingsWithFilter fetches the full list and keeps only holdings
// matching every supplied criterion by exact equality.
func (s *holdingService) ListHoldingsWithFilter(ctx context.Context, filter *models.HoldingFilter) ([]*models.Holding, error) {
	holdings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil || filter.IsEmpty() {
		return holdings, nil
	}

	matched := make([]*models.Holding, 0, len(holdings))
	for _, h := range holdings {
		if filter.Matches(h) {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

// UpdateHolding overwrites the stored document with the given one,
// inserting when the id is not present (upsert).
func (s *holdingService) UpdateHolding(ctx context.Context, h *models.Holding) error {
	return s.repo.Save(ctx, h)
}

// DeleteHolding removes the holding; absent ids are a no-op.
func (s *holdingService) DeleteHolding(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
