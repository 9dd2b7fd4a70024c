package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klarbuch/klarbuch_app/internal/apperrors"
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
	"github.com/klarbuch/klarbuch_app/internal/models"
	"github.com/klarbuch/klarbuch_app/internal/utils/mapping"
	"github.com/klarbuch/klarbuch_app/internal/utils/pagination"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `
	invoice_id, account_id, number, customer_name,
	net_cents, tax_cents, gross_cents, tax_rate_percent,
	issue_date, paid_at, status,
	created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID, &m.AccountID, &m.Number, &m.CustomerName,
		&m.NetCents, &m.TaxCents, &m.GrossCents, &m.TaxRatePercent,
		&m.IssueDate, &m.PaidAt, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveInvoice persists a new invoice.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`,
		m.InvoiceID, m.AccountID, m.Number, m.CustomerName,
		m.NetCents, m.TaxCents, m.GrossCents, m.TaxRatePercent,
		m.IssueDate, m.PaidAt, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if isUniqueViolation(err) {
		return apperrors.ErrDuplicate
	}
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves a specific invoice scoped to the given account.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, accountID *string, invoiceID string) (*domain.Invoice, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE invoice_id = $1 AND ($2::text IS NULL OR account_id = $2)
	`, invoiceID, accountID)

	m, err := scanInvoice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find invoice "+invoiceID, err)
	}

	inv := mapping.ToDomainInvoice(m)
	return &inv, nil
}

// ListInvoices retrieves a page of invoices ordered by (issue_date, created_at) descending.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := []any{accountID, limit + 1}
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE ($1::text IS NULL OR account_id = $1)`

	if nextToken != nil {
		issueDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` AND (issue_date, created_at) < ($3, $4)`
		args = append(args, issueDate, createdAt)
	}
	query += `
		ORDER BY issue_date DESC, created_at DESC
		LIMIT $2`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list invoices", err)
	}
	defer rows.Close()

	var ms []models.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate invoice rows", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.IssueDate, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainInvoiceSlice(ms), token, nil
}

// MarkInvoicePaid records the payment timestamp and flips the status to PAID.
// Cancelled invoices cannot be paid.
func (r *PgxInvoiceRepository) MarkInvoicePaid(ctx context.Context, accountID *string, invoiceID string, paidAt time.Time, updatedBy string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE invoices
		SET paid_at = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE invoice_id = $1 AND ($2::text IS NULL OR account_id = $2) AND status <> $7
	`, invoiceID, accountID, paidAt, models.InvoicePaid, updatedAt, updatedBy, models.InvoiceCancelled)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark invoice paid "+invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateInvoiceStatus updates an invoice status.
func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, accountID *string, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE invoices
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE invoice_id = $1 AND ($2::text IS NULL OR account_id = $2)
	`, invoiceID, accountID, models.InvoiceStatus(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice status "+invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
