package models

import (
	"time"

	"github.com/gofor360/marketbridge/internal/domain/marketing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendEntryModel is the persistence model for the daily ad-spend ledger.
type SpendEntryModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	SpendDate  time.Time       `gorm:"type:date;not null;uniqueIndex:idx_ad_spend_entries_spend_date"`
	GMVMaxCost decimal.Decimal `gorm:"type:decimal(18,4);not null;column:gmv_max_cost"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SpendEntryModel) TableName() string {
	return "ad_spend_entries"
}

// ToDomain converts the persistence model to a domain SpendEntry entity.
func (m *SpendEntryModel) ToDomain() *marketing.SpendEntry {
	return &marketing.SpendEntry{
		ID:         m.ID,
		SpendDate:  marketing.TruncateToDate(m.SpendDate),
		GMVMaxCost: m.GMVMaxCost,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain SpendEntry entity.
func (m *SpendEntryModel) FromDomain(e *marketing.SpendEntry) {
	m.ID = e.ID
	m.SpendDate = e.SpendDate
	m.GMVMaxCost = e.GMVMaxCost
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// SpendEntryModelFromDomain creates a new persistence model from a domain entity.
func SpendEntryModelFromDomain(e *marketing.SpendEntry) *SpendEntryModel {
	m := &SpendEntryModel{}
	m.FromDomain(e)
	return m
}
