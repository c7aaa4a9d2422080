package catalog

import (
	"context"
	"time"

	"github.com/gofor360/marketbridge/internal/domain/shared"
	"github.com/google/uuid"
)

// Catalog domain errors
var (
	ErrMappingNotFound      = shared.NewDomainError("SKU_MAPPING_NOT_FOUND", "SKU mapping not found")
	ErrMappingAlreadyExists = shared.NewDomainError("SKU_MAPPING_ALREADY_EXISTS", "SKU mapping already exists for this external SKU")
	ErrInvalidExternalSKU   = shared.NewDomainError("INVALID_EXTERNAL_SKU", "External SKU must not be empty")
	ErrInvalidInternalSKU   = shared.NewDomainError("INVALID_INTERNAL_SKU", "Internal SKU must not be empty")
)

// SKUMapping maps a SKU identifier reported by the marketplace feed to the
// SKU identifier used by the fulfillment catalog. Mappings are reference
// data: the reconciliation path only ever reads them, and at most one
// mapping exists per external SKU.
type SKUMapping struct {
	// ID is the unique identifier of this mapping
	ID uuid.UUID
	// ExternalSKU is the SKU as reported by the marketplace feed (unique)
	ExternalSKU string
	// InternalSKU is the SKU used by the fulfillment catalog
	InternalSKU string
	// CreatedAt is when this mapping was created
	CreatedAt time.Time
	// UpdatedAt is when this mapping was last updated
	UpdatedAt time.Time
}

// NewSKUMapping creates a new SKU mapping
func NewSKUMapping(externalSKU, internalSKU string) (*SKUMapping, error) {
	if externalSKU == "" {
		return nil, ErrInvalidExternalSKU
	}
	if internalSKU == "" {
		return nil, ErrInvalidInternalSKU
	}

	now := time.Now()
	return &SKUMapping{
		ID:          uuid.New(),
		ExternalSKU: externalSKU,
		InternalSKU: internalSKU,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SKUMappingRepository defines the interface for SKU mapping persistence.
// FindByExternalSKU is the resolver used by order reconciliation: absence
// (ErrMappingNotFound) is an expected outcome, not a failure.
type SKUMappingRepository interface {
	// FindByExternalSKU finds the mapping for an external SKU by exact match
	FindByExternalSKU(ctx context.Context, externalSKU string) (*SKUMapping, error)

	// FindAll returns all mappings ordered by external SKU
	FindAll(ctx context.Context) ([]SKUMapping, error)

	// Save creates or updates a mapping
	Save(ctx context.Context, mapping *SKUMapping) error
}
