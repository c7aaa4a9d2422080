package catalog

import (
	"context"

	"github.com/gofor360/marketbridge/internal/domain/catalog"
	"go.uber.org/zap"
)

// SKUMappingService maintains the external-to-internal SKU catalog
type SKUMappingService struct {
	mappingRepo catalog.SKUMappingRepository
	logger      *zap.Logger
}

// NewSKUMappingService creates a new SKUMappingService
func NewSKUMappingService(mappingRepo catalog.SKUMappingRepository, logger *zap.Logger) *SKUMappingService {
	return &SKUMappingService{
		mappingRepo: mappingRepo,
		logger:      logger,
	}
}

// Upsert registers or re-points a mapping from an external marketplace SKU to
// an internal SKU. Re-pointing only affects orders reconciled afterwards;
// already reconciled orders keep the SKU they were resolved against.
func (s *SKUMappingService) Upsert(ctx context.Context, externalSKU, internalSKU string) (*catalog.SKUMapping, error) {
	mapping, err := catalog.NewSKUMapping(externalSKU, internalSKU)
	if err != nil {
		return nil, err
	}

	if err := s.mappingRepo.Save(ctx, mapping); err != nil {
		s.logger.Error("Failed to save SKU mapping",
			zap.String("external_sku", externalSKU),
			zap.Error(err),
		)
		return nil, err
	}

	return mapping, nil
}

// List returns every known mapping ordered by external SKU
func (s *SKUMappingService) List(ctx context.Context) ([]catalog.SKUMapping, error) {
	return s.mappingRepo.FindAll(ctx)
}

// Resolve looks up the internal SKU for an external one
func (s *SKUMappingService) Resolve(ctx context.Context, externalSKU string) (*catalog.SKUMapping, error) {
	return s.mappingRepo.FindByExternalSKU(ctx, externalSKU)
}
