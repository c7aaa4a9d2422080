package report

import (
	"context"

	"github.com/shopspring/decimal"
)

// KpiSummary is the full-history aggregate over the order ledger and the
// spend ledger. It is derived on demand and never persisted. Empty ledgers
// produce all-zero totals, not an error.
type KpiSummary struct {
	// TotalGMV is the sum of gross sales over all reconciled orders
	TotalGMV decimal.Decimal `json:"total_gmv"`
	// TotalAdSpend is the sum of GMV Max cost over the spend ledger
	TotalAdSpend decimal.Decimal `json:"total_ad_spend"`
	// TotalAffiliateRevenue is the sum of affiliate-attributed revenue
	TotalAffiliateRevenue decimal.Decimal `json:"total_affiliate_revenue"`
	// TotalAffiliateCommissions is the sum of commissions paid out
	TotalAffiliateCommissions decimal.Decimal `json:"total_affiliate_commissions"`
	// NetProfit is total net revenue minus total ad spend
	NetProfit decimal.Decimal `json:"net_profit"`
}

// EmptyKpiSummary returns a summary with every total at zero
func EmptyKpiSummary() *KpiSummary {
	return &KpiSummary{
		TotalGMV:                  decimal.Zero,
		TotalAdSpend:              decimal.Zero,
		TotalAffiliateRevenue:     decimal.Zero,
		TotalAffiliateCommissions: decimal.Zero,
		NetProfit:                 decimal.Zero,
	}
}

// KpiReportRepository defines the read-only aggregation interface over the
// two ledgers. The snapshot reflects the store's default read consistency;
// no stronger guarantee is imposed.
type KpiReportRepository interface {
	// GetKpiSummary aggregates the full order and spend ledgers
	GetKpiSummary(ctx context.Context) (*KpiSummary, error)
}
