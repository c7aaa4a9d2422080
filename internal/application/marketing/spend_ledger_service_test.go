package marketing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofor360/marketbridge/internal/domain/marketing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockSpendEntryRepository is a mock implementation of SpendEntryRepository
type MockSpendEntryRepository struct {
	mock.Mock
}

func (m *MockSpendEntryRepository) Upsert(ctx context.Context, entry *marketing.SpendEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockSpendEntryRepository) FindByDate(ctx context.Context, date time.Time) (*marketing.SpendEntry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketing.SpendEntry), args.Error(1)
}

func (m *MockSpendEntryRepository) FindAll(ctx context.Context) ([]marketing.SpendEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketing.SpendEntry), args.Error(1)
}

// Ensure mock implements interface
var _ marketing.SpendEntryRepository = (*MockSpendEntryRepository)(nil)

func TestSpendLedgerService_RecordSpend(t *testing.T) {
	repo := new(MockSpendEntryRepository)
	service := NewSpendLedgerService(repo, zap.NewNop())
	day := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(entry *marketing.SpendEntry) bool {
		return entry.SpendDate.Equal(day) &&
			entry.GMVMaxCost.Equal(decimal.RequireFromString("12.50"))
	})).Return(nil)

	outcome, err := service.RecordSpend(context.Background(), day, decimal.RequireFromString("12.50"))

	require.NoError(t, err)
	assert.Equal(t, marketing.SpendOutcomeUpserted, outcome.Status)
	assert.Equal(t, day, outcome.SpendDate)
	repo.AssertExpectations(t)
}

func TestSpendLedgerService_RecordSpend_TruncatesTimestampToDate(t *testing.T) {
	repo := new(MockSpendEntryRepository)
	service := NewSpendLedgerService(repo, zap.NewNop())

	// Mid-afternoon timestamp keys the same row as midnight of that day
	stamp := time.Date(2026, 1, 10, 15, 42, 7, 0, time.UTC)
	midnight := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(entry *marketing.SpendEntry) bool {
		return entry.SpendDate.Equal(midnight)
	})).Return(nil)

	outcome, err := service.RecordSpend(context.Background(), stamp, decimal.RequireFromString("18.00"))

	require.NoError(t, err)
	assert.Equal(t, midnight, outcome.SpendDate)
	repo.AssertExpectations(t)
}

func TestSpendLedgerService_RecordSpend_InvalidDate(t *testing.T) {
	repo := new(MockSpendEntryRepository)
	service := NewSpendLedgerService(repo, zap.NewNop())

	outcome, err := service.RecordSpend(context.Background(), time.Time{}, decimal.RequireFromString("12.50"))

	assert.ErrorIs(t, err, marketing.ErrInvalidSpendDate)
	assert.Equal(t, marketing.SpendOutcomeFailed, outcome.Status)
	assert.Equal(t, marketing.SpendReasonInvalidDate, outcome.Reason)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSpendLedgerService_RecordSpend_StoreFailure(t *testing.T) {
	repo := new(MockSpendEntryRepository)
	service := NewSpendLedgerService(repo, zap.NewNop())
	day := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	storeErr := errors.New("connection refused")
	repo.On("Upsert", mock.Anything, mock.Anything).Return(storeErr)

	outcome, err := service.RecordSpend(context.Background(), day, decimal.RequireFromString("12.50"))

	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, marketing.SpendOutcomeFailed, outcome.Status)
	assert.Equal(t, marketing.SpendReasonPersistenceFailure, outcome.Reason)
	assert.Equal(t, day, outcome.SpendDate)
}

func TestSpendLedgerService_ListSpend(t *testing.T) {
	repo := new(MockSpendEntryRepository)
	service := NewSpendLedgerService(repo, zap.NewNop())

	entry, err := marketing.NewSpendEntry(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	repo.On("FindAll", mock.Anything).Return([]marketing.SpendEntry{*entry}, nil)

	entries, err := service.ListSpend(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].GMVMaxCost.Equal(decimal.RequireFromString("12.50")))
}
