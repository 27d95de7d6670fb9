package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"holdings-backend/internal/db"
	"holdings-backend/internal/models"
)

type holdingRepository struct {
	db    *db.DB
	table string
}

// NewHoldingRepository creates a new holding repository backed by the
// given table. The table name is externally configured so deployments
// can point separate service instances at separate collections.
func NewHoldingRepository(database *db.DB, table string) HoldingRepository {
	return &holdingRepository{db: database, table: table}
}

// AutoMigrate creates or updates the holdings table schema.
func AutoMigrate(database *db.DB, table string) error {
	if err := database.Table(table).AutoMigrate(&models.Holding{}); err != nil {
		return fmt.Errorf("failed to migrate holdings table %q: %w", table, err)
	}
	return nil
}

func (r *holdingRepository) Create(ctx context.Context, h *models.Holding) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Table(r.table).Create(h).Error; err != nil {
		return fmt.Errorf("failed to create holding: %w", err)
	}
	return nil
}

func (r *holdingRepository) GetByID(ctx context.Context, id string) (*models.Holding, error) {
	if id == "" {
		return nil, nil
	}

	var h models.Holding
	if err := r.db.WithContext(ctx).Table(r.table).First(&h, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holding: %w", err)
	}

	return &h, nil
}

func (r *holdingRepository) List(ctx context.Context) ([]*models.Holding, error) {
	var holdings []*models.Holding
	if err := r.db.WithContext(ctx).Table(r.table).Find(&holdings).Error; err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	return holdings, nil
}

// Save performs a full-document overwrite by id, inserting when the id
// does not exist yet (upsert, matching document-store save semantics).
func (r *holdingRepository) Save(ctx context.Context, h *models.Holding) error {
	err := r.db.WithContext(ctx).Table(r.table).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(h).Error
	if err != nil {
		return fmt.Errorf("failed to save holding: %w", err)
	}
	return nil
}

func (r *holdingRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Table(r.table).Delete(&models.Holding{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	return nil
}
