package repositories

import (
	"context"

	"holdings-backend/internal/models"
)

// HoldingRepository defines the interface for holding data operations.
// GetByID returns (nil, nil) when no record matches, mirroring the
// not-found sentinel of a document store lookup.
type HoldingRepository interface {
	Create(ctx context.Context, h *models.Holding) error
	GetByID(ctx context.Context, id string) (*models.Holding, error)
	List(ctx context.Context) ([]*models.Holding, error)
	Save(ctx context.Context, h *models.Holding) error
	Delete(ctx context.Context, id string) error
}
