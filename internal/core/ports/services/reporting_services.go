package services

import (
	"context"
	"time"

	"github.com/klarbuch/klarbuch_app/internal/core/domain"
)

// ReportingService defines operations for deriving period totals from the
// three record sources (ledger entries, receipts, paid invoices).
type ReportingService interface {
	// SumSources aggregates all three sources over the half-open interval
	// [from, to) into one normalized totals value. An unavailable source
	// contributes zero rather than failing the aggregation.
	SumSources(ctx context.Context, accountID *string, from, to time.Time) (domain.RangeTotals, error)

	// PeriodSummary produces the dashboard payload for the fixed windows
	// relative to asOf, the month-to-date VAT settlement, and the annual
	// statement. Section failures are isolated: the report always returns
	// with failed sections zeroed. The VAT settlement is nil when the
	// account's small-business exemption flag is set.
	PeriodSummary(ctx context.Context, accountID *string, asOf time.Time) (*domain.PeriodReport, error)
}
