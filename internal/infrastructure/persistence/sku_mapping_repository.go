package persistence

import (
	"context"
	"errors"

	"github.com/gofor360/marketbridge/internal/domain/catalog"
	"github.com/gofor360/marketbridge/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSKUMappingRepository implements SKUMappingRepository using GORM
type GormSKUMappingRepository struct {
	db *gorm.DB
}

// NewGormSKUMappingRepository creates a new GormSKUMappingRepository
func NewGormSKUMappingRepository(db *gorm.DB) *GormSKUMappingRepository {
	return &GormSKUMappingRepository{db: db}
}

// FindByExternalSKU finds the mapping for an external SKU by exact match.
// Absence maps to catalog.ErrMappingNotFound so callers can distinguish an
// unmapped SKU from a store failure.
func (r *GormSKUMappingRepository) FindByExternalSKU(ctx context.Context, externalSKU string) (*catalog.SKUMapping, error) {
	var model models.SKUMappingModel
	if err := r.db.WithContext(ctx).First(&model, "external_sku = ?", externalSKU).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrMappingNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all mappings ordered by external SKU
func (r *GormSKUMappingRepository) FindAll(ctx context.Context) ([]catalog.SKUMapping, error) {
	var mappingModels []models.SKUMappingModel
	if err := r.db.WithContext(ctx).
		Order("external_sku ASC").
		Find(&mappingModels).Error; err != nil {
		return nil, err
	}

	mappings := make([]catalog.SKUMapping, len(mappingModels))
	for i, model := range mappingModels {
		mappings[i] = *model.ToDomain()
	}
	return mappings, nil
}

// Save creates a mapping, or updates the internal SKU when a mapping for the
// same external SKU already exists. The catalog-maintenance process owns
// corrections, so last write wins here.
func (r *GormSKUMappingRepository) Save(ctx context.Context, mapping *catalog.SKUMapping) error {
	model := models.SKUMappingModelFromDomain(mapping)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_sku"}},
			DoUpdates: clause.AssignmentColumns([]string{"internal_sku", "updated_at"}),
		}).
		Create(model).Error
}

// Ensure GormSKUMappingRepository implements SKUMappingRepository
var _ catalog.SKUMappingRepository = (*GormSKUMappingRepository)(nil)
