package integration

import (
	"github.com/gofor360/marketbridge/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Integration domain errors
var (
	ErrInvalidExternalOrderID = shared.NewDomainError("INVALID_EXTERNAL_ORDER_ID", "External order ID must not be empty")
	ErrInvalidOrderSKU        = shared.NewDomainError("INVALID_ORDER_SKU", "Order external SKU must not be empty")
	ErrOrderNotFound          = shared.NewDomainError("RECONCILED_ORDER_NOT_FOUND", "Reconciled order not found")
)

// RawOrder is an order as delivered by the marketplace feed, before SKU
// resolution and financial derivation. It is a value object: the feed owns
// it and the reconciler never persists it verbatim.
type RawOrder struct {
	// ExternalOrderID is the order ID on the marketplace (unique per order)
	ExternalOrderID string
	// ExternalSKU is the marketplace SKU of the ordered item
	ExternalSKU string
	// GrossTotal is the gross order total as reported by the feed
	GrossTotal decimal.Decimal
	// CustomerEmail is the buyer's email
	CustomerEmail string
	// CustomerPhone is the buyer's phone number
	CustomerPhone string
	// IsAffiliateOrder indicates the order was attributed to an affiliate
	IsAffiliateOrder bool
	// AffiliateCommissionPaid is the commission paid out for this order,
	// zero for organic orders
	AffiliateCommissionPaid decimal.Decimal
}

// Validate checks the identifying fields of a raw order. Monetary fields are
// deliberately not validated: negative or zero totals pass through the
// derivation arithmetically.
func (o RawOrder) Validate() error {
	if o.ExternalOrderID == "" {
		return ErrInvalidExternalOrderID
	}
	if o.ExternalSKU == "" {
		return ErrInvalidOrderSKU
	}
	return nil
}
