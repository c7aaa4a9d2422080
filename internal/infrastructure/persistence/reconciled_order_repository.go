package persistence

import (
	"context"
	"errors"

	"github.com/gofor360/marketbridge/internal/domain/integration"
	"github.com/gofor360/marketbridge/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReconciledOrderRepository implements ReconciledOrderRepository using GORM
type GormReconciledOrderRepository struct {
	db *gorm.DB
}

// NewGormReconciledOrderRepository creates a new GormReconciledOrderRepository
func NewGormReconciledOrderRepository(db *gorm.DB) *GormReconciledOrderRepository {
	return &GormReconciledOrderRepository{db: db}
}

// Insert conditionally inserts a reconciled order. A collision on
// external_order_id is a silent no-op (inserted=false): replays of the same
// marketplace order never double-count and never update the existing row.
// The statement runs in its own transaction; on error nothing is written.
func (r *GormReconciledOrderRepository) Insert(ctx context.Context, order *integration.ReconciledOrder) (bool, error) {
	model := models.ReconciledOrderModelFromDomain(order)

	var inserted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_order_id"}},
			DoNothing: true,
		}).Create(model)
		if result.Error != nil {
			return result.Error
		}
		inserted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// FindByExternalOrderID finds a reconciled order by its marketplace ID
func (r *GormReconciledOrderRepository) FindByExternalOrderID(ctx context.Context, externalOrderID string) (*integration.ReconciledOrder, error) {
	var model models.ReconciledOrderModel
	if err := r.db.WithContext(ctx).First(&model, "external_order_id = ?", externalOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, integration.ErrOrderNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Ensure GormReconciledOrderRepository implements ReconciledOrderRepository
var _ integration.ReconciledOrderRepository = (*GormReconciledOrderRepository)(nil)
