package marketing

import (
	"context"
	"time"

	"github.com/gofor360/marketbridge/internal/domain/marketing"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SpendLedgerService records daily marketing spend figures.
type SpendLedgerService struct {
	spendRepo marketing.SpendEntryRepository
	logger    *zap.Logger
}

// NewSpendLedgerService creates a new SpendLedgerService
func NewSpendLedgerService(spendRepo marketing.SpendEntryRepository, logger *zap.Logger) *SpendLedgerService {
	return &SpendLedgerService{
		spendRepo: spendRepo,
		logger:    logger,
	}
}

// RecordSpend upserts the spend figure for the given day. The write is
// unconditional: a later figure for the same day replaces the earlier one,
// so callers can re-export corrected numbers at any time.
func (s *SpendLedgerService) RecordSpend(ctx context.Context, date time.Time, amount decimal.Decimal) (marketing.SpendOutcome, error) {
	entry, err := marketing.NewSpendEntry(date, amount)
	if err != nil {
		s.logger.Warn("Rejecting invalid spend entry",
			zap.Time("spend_date", date),
			zap.Error(err),
		)
		return marketing.FailedSpendOutcome(marketing.TruncateToDate(date), marketing.SpendReasonInvalidDate), err
	}

	if err := s.spendRepo.Upsert(ctx, entry); err != nil {
		s.logger.Error("Failed to upsert spend entry",
			zap.Time("spend_date", entry.SpendDate),
			zap.Error(err),
		)
		return marketing.FailedSpendOutcome(entry.SpendDate, marketing.SpendReasonPersistenceFailure), err
	}

	return marketing.UpsertedSpendOutcome(entry.SpendDate), nil
}

// ListSpend returns every recorded spend entry ordered by date
func (s *SpendLedgerService) ListSpend(ctx context.Context) ([]marketing.SpendEntry, error) {
	return s.spendRepo.FindAll(ctx)
}
