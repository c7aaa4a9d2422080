package integration

// OutcomeStatus discriminates the result of reconciling one raw order.
type OutcomeStatus string

const (
	// OutcomeStatusPersisted indicates the order was reconciled and the
	// ledger record exists (freshly inserted or an idempotent replay)
	OutcomeStatusPersisted OutcomeStatus = "persisted"
	// OutcomeStatusSkipped indicates the order was intentionally not
	// processed; nothing was persisted
	OutcomeStatusSkipped OutcomeStatus = "skipped"
	// OutcomeStatusFailed indicates the persistence layer failed; the
	// transaction was rolled back and prior state is untouched
	OutcomeStatusFailed OutcomeStatus = "failed"
)

// Skip and failure reasons reported in outcomes.
const (
	ReasonUnmappedSKU        = "unmapped_sku"
	ReasonInvalidOrder       = "invalid_order"
	ReasonPersistenceFailure = "persistence_failure"
)

// ReconcileOutcome reports what happened to a single raw order. It always
// carries the external order ID so skipped and failed orders can be triaged
// without re-deriving them from ledger state.
type ReconcileOutcome struct {
	// ExternalOrderID identifies the order the outcome refers to
	ExternalOrderID string `json:"external_order_id"`
	// Status discriminates persisted, skipped and failed outcomes
	Status OutcomeStatus `json:"status"`
	// Reason explains skipped and failed outcomes; empty when persisted
	Reason string `json:"reason,omitempty"`
	// Duplicate is true when the order was already in the ledger and the
	// insert collapsed into a no-op success
	Duplicate bool `json:"duplicate,omitempty"`
}

// PersistedOutcome reports a successfully reconciled order
func PersistedOutcome(externalOrderID string, duplicate bool) ReconcileOutcome {
	return ReconcileOutcome{
		ExternalOrderID: externalOrderID,
		Status:          OutcomeStatusPersisted,
		Duplicate:       duplicate,
	}
}

// SkippedOutcome reports an order that was intentionally not processed
func SkippedOutcome(externalOrderID, reason string) ReconcileOutcome {
	return ReconcileOutcome{
		ExternalOrderID: externalOrderID,
		Status:          OutcomeStatusSkipped,
		Reason:          reason,
	}
}

// FailedOutcome reports an order whose persistence failed
func FailedOutcome(externalOrderID, reason string) ReconcileOutcome {
	return ReconcileOutcome{
		ExternalOrderID: externalOrderID,
		Status:          OutcomeStatusFailed,
		Reason:          reason,
	}
}
