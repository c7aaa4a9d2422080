package models

import (
	"time"

	"github.com/gofor360/marketbridge/internal/domain/catalog"
	"github.com/google/uuid"
)

// SKUMappingModel is the persistence model for the SKUMapping domain entity.
type SKUMappingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ExternalSKU string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_sku_mappings_external_sku"`
	InternalSKU string    `gorm:"type:varchar(100);not null;index:idx_sku_mappings_internal_sku"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SKUMappingModel) TableName() string {
	return "sku_mappings"
}

// ToDomain converts the persistence model to a domain SKUMapping entity.
func (m *SKUMappingModel) ToDomain() *catalog.SKUMapping {
	return &catalog.SKUMapping{
		ID:          m.ID,
		ExternalSKU: m.ExternalSKU,
		InternalSKU: m.InternalSKU,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain SKUMapping entity.
func (m *SKUMappingModel) FromDomain(s *catalog.SKUMapping) {
	m.ID = s.ID
	m.ExternalSKU = s.ExternalSKU
	m.InternalSKU = s.InternalSKU
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// SKUMappingModelFromDomain creates a new persistence model from a domain SKUMapping entity.
func SKUMappingModelFromDomain(s *catalog.SKUMapping) *SKUMappingModel {
	m := &SKUMappingModel{}
	m.FromDomain(s)
	return m
}
