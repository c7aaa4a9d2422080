package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/gofor360/marketbridge/internal/domain/marketing"
	"github.com/gofor360/marketbridge/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSpendEntryRepository implements SpendEntryRepository using GORM
type GormSpendEntryRepository struct {
	db *gorm.DB
}

// NewGormSpendEntryRepository creates a new GormSpendEntryRepository
func NewGormSpendEntryRepository(db *gorm.DB) *GormSpendEntryRepository {
	return &GormSpendEntryRepository{db: db}
}

// Upsert inserts the entry, or overwrites gmv_max_cost when an entry for the
// same date exists. Unlike the order ledger, the spend ledger is
// corrections-friendly: the latest figure for a day wins. Runs in its own
// transaction; on error the prior figure is intact.
func (r *GormSpendEntryRepository) Upsert(ctx context.Context, entry *marketing.SpendEntry) error {
	model := models.SpendEntryModelFromDomain(entry)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "spend_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"gmv_max_cost", "updated_at"}),
		}).Create(model).Error
	})
}

// FindByDate finds the entry for a calendar date
func (r *GormSpendEntryRepository) FindByDate(ctx context.Context, date time.Time) (*marketing.SpendEntry, error) {
	var model models.SpendEntryModel
	if err := r.db.WithContext(ctx).
		First(&model, "spend_date = ?", marketing.TruncateToDate(date)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, marketing.ErrSpendEntryNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all entries ordered by date
func (r *GormSpendEntryRepository) FindAll(ctx context.Context) ([]marketing.SpendEntry, error) {
	var entryModels []models.SpendEntryModel
	if err := r.db.WithContext(ctx).
		Order("spend_date ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]marketing.SpendEntry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// Ensure GormSpendEntryRepository implements SpendEntryRepository
var _ marketing.SpendEntryRepository = (*GormSpendEntryRepository)(nil)
