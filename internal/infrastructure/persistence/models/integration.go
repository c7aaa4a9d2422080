package models

import (
	"time"

	"github.com/gofor360/marketbridge/internal/domain/integration"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReconciledOrderModel is the persistence model for the ReconciledOrder
// ledger record. The unique index on external_order_id is what makes the
// conditional insert idempotent.
type ReconciledOrderModel struct {
	ID                  uuid.UUID              `gorm:"type:uuid;primary_key"`
	ExternalOrderID     string                 `gorm:"type:varchar(100);not null;uniqueIndex:idx_reconciled_orders_external_order_id"`
	InternalSKU         string                 `gorm:"type:varchar(100);not null"`
	CustomerEmail       string                 `gorm:"type:varchar(255)"`
	CustomerPhone       string                 `gorm:"type:varchar(50)"`
	GrossSales          decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	PlatformFee         decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	AffiliateCommission decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	NetRevenue          decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	IsAffiliateOrder    bool                   `gorm:"not null;default:false"`
	AffiliateRevenue    decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	SyncStatus          integration.SyncStatus `gorm:"type:varchar(20);not null;default:'synced'"`
	CreatedAt           time.Time              `gorm:"not null"`
	UpdatedAt           time.Time              `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReconciledOrderModel) TableName() string {
	return "reconciled_orders"
}

// ToDomain converts the persistence model to a domain ReconciledOrder entity.
func (m *ReconciledOrderModel) ToDomain() *integration.ReconciledOrder {
	return &integration.ReconciledOrder{
		ID:                  m.ID,
		ExternalOrderID:     m.ExternalOrderID,
		InternalSKU:         m.InternalSKU,
		CustomerEmail:       m.CustomerEmail,
		CustomerPhone:       m.CustomerPhone,
		GrossSales:          m.GrossSales,
		PlatformFee:         m.PlatformFee,
		AffiliateCommission: m.AffiliateCommission,
		NetRevenue:          m.NetRevenue,
		IsAffiliateOrder:    m.IsAffiliateOrder,
		AffiliateRevenue:    m.AffiliateRevenue,
		SyncStatus:          m.SyncStatus,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain ReconciledOrder entity.
func (m *ReconciledOrderModel) FromDomain(o *integration.ReconciledOrder) {
	m.ID = o.ID
	m.ExternalOrderID = o.ExternalOrderID
	m.InternalSKU = o.InternalSKU
	m.CustomerEmail = o.CustomerEmail
	m.CustomerPhone = o.CustomerPhone
	m.GrossSales = o.GrossSales
	m.PlatformFee = o.PlatformFee
	m.AffiliateCommission = o.AffiliateCommission
	m.NetRevenue = o.NetRevenue
	m.IsAffiliateOrder = o.IsAffiliateOrder
	m.AffiliateRevenue = o.AffiliateRevenue
	m.SyncStatus = o.SyncStatus
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
}

// ReconciledOrderModelFromDomain creates a new persistence model from a domain entity.
func ReconciledOrderModelFromDomain(o *integration.ReconciledOrder) *ReconciledOrderModel {
	m := &ReconciledOrderModel{}
	m.FromDomain(o)
	return m
}
