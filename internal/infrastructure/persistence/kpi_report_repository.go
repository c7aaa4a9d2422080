package persistence

import (
	"context"

	"github.com/gofor360/marketbridge/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormKpiReportRepository implements KpiReportRepository using GORM
type GormKpiReportRepository struct {
	db *gorm.DB
}

// NewGormKpiReportRepository creates a new GormKpiReportRepository
func NewGormKpiReportRepository(db *gorm.DB) *GormKpiReportRepository {
	return &GormKpiReportRepository{db: db}
}

// GetKpiSummary aggregates the full order and spend ledgers. Every SUM is
// COALESCEd to zero so empty ledgers yield an all-zero summary rather than
// an error. No date filtering: this is a full-history snapshot at the
// store's default read consistency.
func (r *GormKpiReportRepository) GetKpiSummary(ctx context.Context) (*report.KpiSummary, error) {
	var totalGMV decimal.Decimal
	if err := r.db.WithContext(ctx).Table("reconciled_orders").
		Select("COALESCE(SUM(gross_sales), 0)").
		Scan(&totalGMV).Error; err != nil {
		return nil, err
	}

	var totalAdSpend decimal.Decimal
	if err := r.db.WithContext(ctx).Table("ad_spend_entries").
		Select("COALESCE(SUM(gmv_max_cost), 0)").
		Scan(&totalAdSpend).Error; err != nil {
		return nil, err
	}

	var totalAffiliateRevenue decimal.Decimal
	if err := r.db.WithContext(ctx).Table("reconciled_orders").
		Select("COALESCE(SUM(affiliate_revenue), 0)").
		Scan(&totalAffiliateRevenue).Error; err != nil {
		return nil, err
	}

	var totalAffiliateCommissions decimal.Decimal
	if err := r.db.WithContext(ctx).Table("reconciled_orders").
		Select("COALESCE(SUM(affiliate_commission), 0)").
		Scan(&totalAffiliateCommissions).Error; err != nil {
		return nil, err
	}

	var totalNetRevenue decimal.Decimal
	if err := r.db.WithContext(ctx).Table("reconciled_orders").
		Select("COALESCE(SUM(net_revenue), 0)").
		Scan(&totalNetRevenue).Error; err != nil {
		return nil, err
	}

	return &report.KpiSummary{
		TotalGMV:                  totalGMV,
		TotalAdSpend:              totalAdSpend,
		TotalAffiliateRevenue:     totalAffiliateRevenue,
		TotalAffiliateCommissions: totalAffiliateCommissions,
		NetProfit:                 totalNetRevenue.Sub(totalAdSpend),
	}, nil
}

// Ensure GormKpiReportRepository implements KpiReportRepository
var _ report.KpiReportRepository = (*GormKpiReportRepository)(nil)
