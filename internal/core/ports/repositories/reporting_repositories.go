package repositories

import (
	"context"
	"time"

	"github.com/klarbuch/klarbuch_app/internal/core/domain"
)

// ReportingRepository defines the aggregate queries the ledger aggregator runs
// over the three document sources. All ranges are half-open: [from, to).
//
// Every method must degrade to zero values when its backing table or an
// expected column does not exist yet (partially initialized schemas), rather
// than failing the aggregation.
type ReportingRepository interface {
	// SumLedgerEntries sums manually booked income and expense entries
	// (transfers are skipped), both gross and net legs.
	SumLedgerEntries(ctx context.Context, accountID *string, from, to time.Time) (domain.RangeTotals, error)

	// SumReceipts sums receipts dated in range. Every receipt counts as
	// income. Receipts referenced by a ledger entry are excluded to avoid
	// double counting.
	SumReceipts(ctx context.Context, accountID *string, from, to time.Time) (grossCents, netCents int64, err error)

	// SumPaidInvoices sums realized invoices: paid_at in range, or, for rows
	// predating payment timestamps, status PAID with issue_date in range.
	// Invoices referenced by a ledger entry are excluded.
	SumPaidInvoices(ctx context.Context, accountID *string, from, to time.Time) (grossCents, netCents int64, err error)

	// SumVATBuckets groups income/expense ledger entries in range by
	// (kind, vat_rate) and sums the net and VAT legs per group. Entries with
	// a NULL rate are not VAT-relevant and are skipped.
	SumVATBuckets(ctx context.Context, accountID *string, from, to time.Time) ([]domain.VATBucketRow, error)
}
