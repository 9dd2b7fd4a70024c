package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klarbuch/klarbuch_app/internal/apperrors"
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository runs the aggregate queries behind the ledger aggregator.
// All ranges are half-open: booked/realized dates in [from, to).
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// SumLedgerEntries sums manually booked income and expense entries by kind.
// Transfers move money between accounts and never count as either.
func (r *reportingRepository) SumLedgerEntries(ctx context.Context, accountID *string, from, to time.Time) (domain.RangeTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN kind = 'INCOME' THEN gross_cents ELSE 0 END), 0) AS income_gross,
			COALESCE(SUM(CASE WHEN kind = 'EXPENSE' THEN gross_cents ELSE 0 END), 0) AS expense_gross,
			COALESCE(SUM(CASE WHEN kind = 'INCOME' THEN net_cents ELSE 0 END), 0) AS income_net,
			COALESCE(SUM(CASE WHEN kind = 'EXPENSE' THEN net_cents ELSE 0 END), 0) AS expense_net
		FROM ledger_entries
		WHERE booked_on >= $1 AND booked_on < $2
			AND ($3::text IS NULL OR account_id = $3)
	`

	var totals domain.RangeTotals
	err := r.Pool.QueryRow(ctx, query, from, to, accountID).Scan(
		&totals.IncomeGrossCents,
		&totals.ExpenseGrossCents,
		&totals.IncomeNetCents,
		&totals.ExpenseNetCents,
	)
	if isSchemaDrift(err) {
		return domain.RangeTotals{}, nil
	}
	if err != nil {
		return domain.RangeTotals{}, apperrors.NewAppError(500, "failed to sum ledger entries", err)
	}
	return totals, nil
}

// SumReceipts sums receipts dated in range. Receipts already recorded by a
// linking ledger entry are excluded so the money is not counted twice.
func (r *reportingRepository) SumReceipts(ctx context.Context, accountID *string, from, to time.Time) (int64, int64, error) {
	query := `
		SELECT
			COALESCE(SUM(gross_cents), 0),
			COALESCE(SUM(net_cents), 0)
		FROM receipts r
		WHERE r.booked_on >= $1 AND r.booked_on < $2
			AND ($3::text IS NULL OR r.account_id = $3)
			AND NOT EXISTS (
				SELECT 1 FROM ledger_entries le WHERE le.receipt_id = r.receipt_id
			)
	`

	var gross, net int64
	err := r.Pool.QueryRow(ctx, query, from, to, accountID).Scan(&gross, &net)
	if isSchemaDrift(err) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, apperrors.NewAppError(500, "failed to sum receipts", err)
	}
	return gross, net, nil
}

// SumPaidInvoices sums realized invoices. An invoice is realized when paid_at
// falls in range; rows without a payment timestamp fall back to status PAID
// with issue_date in range, which is an approximation for data predating
// explicit payment tracking, not a cash-basis guarantee. Invoices already
// recorded by a linking ledger entry are excluded.
func (r *reportingRepository) SumPaidInvoices(ctx context.Context, accountID *string, from, to time.Time) (int64, int64, error) {
	query := `
		SELECT
			COALESCE(SUM(gross_cents), 0),
			COALESCE(SUM(net_cents), 0)
		FROM invoices i
		WHERE i.status <> 'CANCELLED'
			AND (
				(i.paid_at IS NOT NULL AND i.paid_at >= $1 AND i.paid_at < $2)
				OR (i.paid_at IS NULL AND i.status = 'PAID' AND i.issue_date >= $1 AND i.issue_date < $2)
			)
			AND ($3::text IS NULL OR i.account_id = $3)
			AND NOT EXISTS (
				SELECT 1 FROM ledger_entries le WHERE le.invoice_id = i.invoice_id
			)
	`

	var gross, net int64
	err := r.Pool.QueryRow(ctx, query, from, to, accountID).Scan(&gross, &net)
	if isSchemaDrift(err) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, apperrors.NewAppError(500, "failed to sum paid invoices", err)
	}
	return gross, net, nil
}

// SumVATBuckets groups income/expense entries by (kind, vat_rate) and sums
// the net and VAT legs. Entries with a NULL rate are not VAT-relevant and are
// skipped; a 0% rate is a real group.
func (r *reportingRepository) SumVATBuckets(ctx context.Context, accountID *string, from, to time.Time) ([]domain.VATBucketRow, error) {
	query := `
		SELECT
			kind,
			vat_rate_percent,
			COALESCE(SUM(net_cents), 0),
			COALESCE(SUM(vat_cents), 0)
		FROM ledger_entries
		WHERE booked_on >= $1 AND booked_on < $2
			AND ($3::text IS NULL OR account_id = $3)
			AND kind IN ('INCOME', 'EXPENSE')
			AND vat_rate_percent IS NOT NULL
		GROUP BY kind, vat_rate_percent
	`

	rows, err := r.Pool.Query(ctx, query, from, to, accountID)
	if isSchemaDrift(err) {
		return []domain.VATBucketRow{}, nil
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum VAT buckets", err)
	}
	defer rows.Close()

	var result []domain.VATBucketRow
	for rows.Next() {
		var kind string
		var rate decimal.Decimal
		var bucket domain.VATBucketRow
		if err := rows.Scan(&kind, &rate, &bucket.NetCents, &bucket.VATCents); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan VAT bucket row", err)
		}
		bucket.Kind = domain.EntryKind(kind)
		bucket.RatePercent = rate
		result = append(result, bucket)
	}
	if err := rows.Err(); err != nil {
		// pgx reports most execution errors here rather than from Query.
		if isSchemaDrift(err) {
			return []domain.VATBucketRow{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to iterate VAT bucket rows", err)
	}

	if len(result) == 0 {
		return []domain.VATBucketRow{}, nil
	}
	return result, nil
}
