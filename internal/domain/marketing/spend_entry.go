package marketing

import (
	"context"
	"time"

	"github.com/gofor360/marketbridge/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Marketing domain errors
var (
	ErrSpendEntryNotFound = shared.NewDomainError("SPEND_ENTRY_NOT_FOUND", "Spend entry not found")
	ErrInvalidSpendDate   = shared.NewDomainError("INVALID_SPEND_DATE", "Spend date must not be zero")
)

// SpendEntry is one day of marketing spend (GMV Max advertising cost).
// Exactly one entry exists per calendar date; recording a new figure for an
// existing date replaces the previous one, because spend reports are
// corrections-friendly, unlike order ledger records.
type SpendEntry struct {
	// ID is the unique identifier of the entry
	ID uuid.UUID
	// SpendDate is the calendar date the spend applies to (unique)
	SpendDate time.Time
	// GMVMaxCost is the advertising spend for that date
	GMVMaxCost decimal.Decimal
	// CreatedAt is when this entry was first recorded
	CreatedAt time.Time
	// UpdatedAt is when this entry was last overwritten
	UpdatedAt time.Time
}

// NewSpendEntry creates a spend entry for the given date. The date is
// truncated to midnight UTC so two timestamps on the same day always key the
// same ledger row.
func NewSpendEntry(spendDate time.Time, cost decimal.Decimal) (*SpendEntry, error) {
	if spendDate.IsZero() {
		return nil, ErrInvalidSpendDate
	}

	now := time.Now()
	return &SpendEntry{
		ID:         uuid.New(),
		SpendDate:  TruncateToDate(spendDate),
		GMVMaxCost: cost,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// TruncateToDate normalizes a timestamp to midnight UTC of its calendar day
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SpendOutcomeStatus discriminates the result of recording a spend figure.
type SpendOutcomeStatus string

const (
	// SpendOutcomeUpserted indicates the figure was inserted or overwrote
	// the previous figure for the date
	SpendOutcomeUpserted SpendOutcomeStatus = "upserted"
	// SpendOutcomeFailed indicates the persistence layer failed; the prior
	// figure, if any, is intact
	SpendOutcomeFailed SpendOutcomeStatus = "failed"
)

// Failure reasons reported in spend outcomes.
const (
	SpendReasonInvalidDate        = "invalid_spend_date"
	SpendReasonPersistenceFailure = "persistence_failure"
)

// SpendOutcome reports what happened to a single spend submission, carrying
// the date so failures can be triaged individually.
type SpendOutcome struct {
	// SpendDate identifies the ledger day the outcome refers to
	SpendDate time.Time `json:"spend_date"`
	// Status discriminates upserted and failed outcomes
	Status SpendOutcomeStatus `json:"status"`
	// Reason explains failed outcomes; empty when upserted
	Reason string `json:"reason,omitempty"`
}

// UpsertedSpendOutcome reports a successfully recorded spend figure
func UpsertedSpendOutcome(date time.Time) SpendOutcome {
	return SpendOutcome{
		SpendDate: date,
		Status:    SpendOutcomeUpserted,
	}
}

// FailedSpendOutcome reports a spend figure that was not recorded
func FailedSpendOutcome(date time.Time, reason string) SpendOutcome {
	return SpendOutcome{
		SpendDate: date,
		Status:    SpendOutcomeFailed,
		Reason:    reason,
	}
}

// SpendEntryRepository defines the interface for the spend ledger.
type SpendEntryRepository interface {
	// Upsert inserts the entry, or overwrites the cost if an entry for the
	// same date exists (last write wins). Runs in a single transaction.
	Upsert(ctx context.Context, entry *SpendEntry) error

	// FindByDate finds the entry for a calendar date
	FindByDate(ctx context.Context, date time.Time) (*SpendEntry, error)

	// FindAll returns all entries ordered by date
	FindAll(ctx context.Context) ([]SpendEntry, error)
}
