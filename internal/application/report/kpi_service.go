package report

import (
	"context"

	"github.com/gofor360/marketbridge/internal/domain/report"
)

// KpiService exposes the cross-ledger KPI summary
type KpiService struct {
	kpiRepo report.KpiReportRepository
}

// NewKpiService creates a new KpiService
func NewKpiService(kpiRepo report.KpiReportRepository) *KpiService {
	return &KpiService{kpiRepo: kpiRepo}
}

// Summarize aggregates the full history of both ledgers into one summary.
// Empty ledgers yield zeros, never an error.
func (s *KpiService) Summarize(ctx context.Context) (*report.KpiSummary, error) {
	return s.kpiRepo.GetKpiSummary(ctx)
}
