package integration

import (
	"context"
	"errors"

	"github.com/gofor360/marketbridge/internal/domain/catalog"
	"github.com/gofor360/marketbridge/internal/domain/integration"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderReconciliationService turns raw marketplace orders into reconciled
// ledger rows. Each call is a single store round-trip with no retries.
type OrderReconciliationService struct {
	skuMappingRepo catalog.SKUMappingRepository
	orderRepo      integration.ReconciledOrderRepository
	feeRate        decimal.Decimal
	logger         *zap.Logger
}

// NewOrderReconciliationService creates a new OrderReconciliationService.
// feeRate is the platform fee rate applied to every order's gross total.
func NewOrderReconciliationService(
	skuMappingRepo catalog.SKUMappingRepository,
	orderRepo integration.ReconciledOrderRepository,
	feeRate decimal.Decimal,
	logger *zap.Logger,
) *OrderReconciliationService {
	return &OrderReconciliationService{
		skuMappingRepo: skuMappingRepo,
		orderRepo:      orderRepo,
		feeRate:        feeRate,
		logger:         logger,
	}
}

// Reconcile resolves the order's SKU, derives its financials and inserts it
// into the ledger. The returned outcome always discriminates what happened;
// the error is non-nil only for persistence failures.
//
// An order whose external SKU has no mapping is skipped, not failed: catalog
// gaps are an expected operating condition and the caller is free to replay
// the order after the mapping lands. Replays of an already reconciled order
// report success with Duplicate set and never touch the stored row.
func (s *OrderReconciliationService) Reconcile(ctx context.Context, raw integration.RawOrder) (integration.ReconcileOutcome, error) {
	if err := raw.Validate(); err != nil {
		s.logger.Warn("Rejecting invalid raw order",
			zap.String("external_order_id", raw.ExternalOrderID),
			zap.Error(err),
		)
		return integration.SkippedOutcome(raw.ExternalOrderID, integration.ReasonInvalidOrder), nil
	}

	mapping, err := s.skuMappingRepo.FindByExternalSKU(ctx, raw.ExternalSKU)
	if err != nil {
		if errors.Is(err, catalog.ErrMappingNotFound) {
			s.logger.Warn("Skipping order with unmapped SKU",
				zap.String("external_order_id", raw.ExternalOrderID),
				zap.String("external_sku", raw.ExternalSKU),
			)
			return integration.SkippedOutcome(raw.ExternalOrderID, integration.ReasonUnmappedSKU), nil
		}
		s.logger.Error("SKU lookup failed",
			zap.String("external_order_id", raw.ExternalOrderID),
			zap.Error(err),
		)
		return integration.FailedOutcome(raw.ExternalOrderID, integration.ReasonPersistenceFailure), err
	}

	fin := integration.DeriveFinancials(raw.GrossTotal, raw.AffiliateCommissionPaid, raw.IsAffiliateOrder, s.feeRate)
	order := integration.NewReconciledOrder(raw, mapping.InternalSKU, fin)

	inserted, err := s.orderRepo.Insert(ctx, order)
	if err != nil {
		s.logger.Error("Failed to persist reconciled order",
			zap.String("external_order_id", raw.ExternalOrderID),
			zap.Error(err),
		)
		return integration.FailedOutcome(raw.ExternalOrderID, integration.ReasonPersistenceFailure), err
	}

	outcome := integration.PersistedOutcome(raw.ExternalOrderID, !inserted)
	if outcome.Duplicate {
		s.logger.Info("Order already reconciled, insert skipped",
			zap.String("external_order_id", raw.ExternalOrderID),
		)
	}
	return outcome, nil
}
