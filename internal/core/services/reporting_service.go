package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
	portssvc "github.com/klarbuch/klarbuch_app/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	settingsRepo  portsrepo.SettingsRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository, settingsRepo portsrepo.SettingsRepository) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: repo,
		settingsRepo:  settingsRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// SumSources aggregates ledger entries, receipts and realized invoices over
// [from, to). A failing source contributes zero; the other sources still count.
func (s *reportingService) SumSources(ctx context.Context, accountID *string, from, to time.Time) (domain.RangeTotals, error) {
	totals, err := s.reportingRepo.SumLedgerEntries(ctx, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Ledger entry aggregation failed, counting zero")
		totals = domain.RangeTotals{}
	}

	receiptGross, receiptNet, err := s.reportingRepo.SumReceipts(ctx, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Receipt aggregation failed, counting zero")
		receiptGross, receiptNet = 0, 0
	}
	totals.Add(domain.RangeTotals{IncomeGrossCents: receiptGross, IncomeNetCents: receiptNet})

	invoiceGross, invoiceNet, err := s.reportingRepo.SumPaidInvoices(ctx, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Invoice aggregation failed, counting zero")
		invoiceGross, invoiceNet = 0, 0
	}
	totals.Add(domain.RangeTotals{IncomeGrossCents: invoiceGross, IncomeNetCents: invoiceNet})

	return totals, nil
}

// PeriodSummary builds the full dashboard payload. Every section degrades
// independently: a failed window or settlement shows zeros while the rest of
// the report stands.
func (s *reportingService) PeriodSummary(ctx context.Context, accountID *string, asOf time.Time) (*domain.PeriodReport, error) {
	dayStart := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	yearStart := time.Date(asOf.Year(), 1, 1, 0, 0, 0, 0, asOf.Location())

	report := &domain.PeriodReport{AsOf: asOf}

	report.Today = s.windowTotals(ctx, accountID, dayStart, dayEnd, "today")
	report.Last7Days = s.windowTotals(ctx, accountID, dayStart.AddDate(0, 0, -7), dayEnd, "last7days")
	report.Last30Days = s.windowTotals(ctx, accountID, dayStart.AddDate(0, 0, -30), dayEnd, "last30days")
	report.MonthToDate = s.windowTotals(ctx, accountID, monthStart, dayEnd, "monthToDate")
	report.VATSettlement = s.vatSettlement(ctx, accountID, monthStart, dayEnd)
	report.Annual = s.annualStatement(ctx, accountID, yearStart, asOf.Year())

	return report, nil
}

// windowTotals aggregates one window, degrading to zeros on failure.
func (s *reportingService) windowTotals(ctx context.Context, accountID *string, from, to time.Time, window string) domain.RangeTotals {
	totals, err := s.SumSources(ctx, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Window aggregation failed, reporting zeros", slog.String("window", window))
		return domain.RangeTotals{}
	}
	return totals
}

// vatSettlement computes the month-to-date VAT position. Accounts under the
// small-business exemption report no settlement at all (nil, not zeros).
// Only the two statutory rates form buckets; entries at other rates are left
// out of the settlement.
func (s *reportingService) vatSettlement(ctx context.Context, accountID *string, from, to time.Time) *domain.VATSettlement {
	settings, err := s.settingsRepo.GetSettings(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account settings, assuming VAT liability")
	}
	if settings.SmallBusinessScheme {
		return nil
	}

	rows, err := s.reportingRepo.SumVATBuckets(ctx, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "VAT bucket aggregation failed, reporting empty settlement")
		return &domain.VATSettlement{}
	}

	settlement := &domain.VATSettlement{}
	for _, row := range rows {
		bucket := domain.VATBucket{NetCents: row.NetCents, VATCents: row.VATCents}
		switch {
		case row.Kind == domain.EntryIncome && row.RatePercent.Equal(domain.VATRateStandard):
			settlement.IncomeStandard = bucket
		case row.Kind == domain.EntryIncome && row.RatePercent.Equal(domain.VATRateReduced):
			settlement.IncomeReduced = bucket
		case row.Kind == domain.EntryExpense && row.RatePercent.Equal(domain.VATRateStandard):
			settlement.ExpenseStandard = bucket
		case row.Kind == domain.EntryExpense && row.RatePercent.Equal(domain.VATRateReduced):
			settlement.ExpenseReduced = bucket
		}
	}

	settlement.NetVATCents = settlement.IncomeStandard.VATCents + settlement.IncomeReduced.VATCents -
		settlement.ExpenseStandard.VATCents - settlement.ExpenseReduced.VATCents
	return settlement
}

// annualStatement builds the simplified cash-basis annual statement for the
// calendar year containing asOf.
func (s *reportingService) annualStatement(ctx context.Context, accountID *string, yearStart time.Time, year int) domain.AnnualStatement {
	totals, err := s.SumSources(ctx, accountID, yearStart, yearStart.AddDate(1, 0, 0))
	if err != nil {
		s.LogError(ctx, err, "Annual aggregation failed, reporting zeros", slog.Int("year", year))
		totals = domain.RangeTotals{}
	}
	return domain.AnnualStatement{
		Year:            year,
		IncomeNetCents:  totals.IncomeNetCents,
		ExpenseNetCents: totals.ExpenseNetCents,
		ResultCents:     totals.IncomeNetCents - totals.ExpenseNetCents,
	}
}
