package integration

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SyncStatus represents the synchronization state of a reconciled order.
// The reconciler only ever writes SyncStatusSynced; the enum exists so the
// ledger schema can grow states without a migration of meaning.
type SyncStatus string

const (
	// SyncStatusSynced indicates the order has been reconciled and persisted
	SyncStatusSynced SyncStatus = "synced"
)

// IsValid returns true if the status is a valid SyncStatus
func (s SyncStatus) IsValid() bool {
	return s == SyncStatusSynced
}

// String returns the string representation of SyncStatus
func (s SyncStatus) String() string {
	return string(s)
}

// ReconciledOrder is the financial ledger record produced from a raw order.
// At most one record exists per external order ID, and a record is never
// mutated or deleted once written: a replay of the same order is a no-op.
type ReconciledOrder struct {
	// ID is the unique identifier of the ledger record
	ID uuid.UUID
	// ExternalOrderID is the marketplace order ID (unique)
	ExternalOrderID string
	// InternalSKU is the fulfillment catalog SKU the order resolved to
	InternalSKU string
	// CustomerEmail is the buyer's email
	CustomerEmail string
	// CustomerPhone is the buyer's phone number
	CustomerPhone string
	// GrossSales is the gross order total
	GrossSales decimal.Decimal
	// PlatformFee is the derived marketplace fee
	PlatformFee decimal.Decimal
	// AffiliateCommission is the commission paid for the order
	AffiliateCommission decimal.Decimal
	// NetRevenue is the derived net revenue
	NetRevenue decimal.Decimal
	// IsAffiliateOrder indicates affiliate attribution
	IsAffiliateOrder bool
	// AffiliateRevenue is the derived affiliate-attributed revenue
	AffiliateRevenue decimal.Decimal
	// SyncStatus is the synchronization state of the record
	SyncStatus SyncStatus
	// CreatedAt is when this record was created
	CreatedAt time.Time
	// UpdatedAt is when this record was last updated
	UpdatedAt time.Time
}

// NewReconciledOrder builds the ledger record for a raw order from its
// resolved internal SKU and derived financials.
func NewReconciledOrder(raw RawOrder, internalSKU string, fin Financials) *ReconciledOrder {
	now := time.Now()
	return &ReconciledOrder{
		ID:                  uuid.New(),
		ExternalOrderID:     raw.ExternalOrderID,
		InternalSKU:         internalSKU,
		CustomerEmail:       raw.CustomerEmail,
		CustomerPhone:       raw.CustomerPhone,
		GrossSales:          raw.GrossTotal,
		PlatformFee:         fin.PlatformFee,
		AffiliateCommission: raw.AffiliateCommissionPaid,
		NetRevenue:          fin.NetRevenue,
		IsAffiliateOrder:    raw.IsAffiliateOrder,
		AffiliateRevenue:    fin.AffiliateRevenue,
		SyncStatus:          SyncStatusSynced,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// ReconciledOrderRepository defines the interface for persisting reconciled
// orders. The ledger is append-only through this interface: there is no
// update or delete.
type ReconciledOrderRepository interface {
	// Insert conditionally inserts a reconciled order. If a record with the
	// same external order ID already exists the insert is a silent no-op and
	// inserted is false. The whole operation runs in a single transaction:
	// on error nothing is written.
	Insert(ctx context.Context, order *ReconciledOrder) (inserted bool, err error)

	// FindByExternalOrderID finds a reconciled order by its marketplace ID
	FindByExternalOrderID(ctx context.Context, externalOrderID string) (*ReconciledOrder, error)
}
