package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klarbuch/klarbuch_app/internal/apperrors"
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
	"github.com/klarbuch/klarbuch_app/internal/models"
	"github.com/klarbuch/klarbuch_app/internal/utils/mapping"
	"github.com/klarbuch/klarbuch_app/internal/utils/pagination"
)

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipt data.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReceiptRepository implements portsrepo.ReceiptRepositoryFacade
var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

const receiptColumns = `
	receipt_id, account_id, number, description,
	net_cents, tax_cents, gross_cents, tax_rate_percent, booked_on,
	created_at, created_by, last_updated_at, last_updated_by`

func scanReceipt(row pgx.Row) (models.Receipt, error) {
	var m models.Receipt
	err := row.Scan(
		&m.ReceiptID, &m.AccountID, &m.Number, &m.Description,
		&m.NetCents, &m.TaxCents, &m.GrossCents, &m.TaxRatePercent, &m.BookedOn,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveReceipt persists a new receipt.
func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	m := mapping.ToModelReceipt(receipt)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO receipts (`+receiptColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		m.ReceiptID, m.AccountID, m.Number, m.Description,
		m.NetCents, m.TaxCents, m.GrossCents, m.TaxRatePercent, m.BookedOn,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if isUniqueViolation(err) {
		return apperrors.ErrDuplicate
	}
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert receipt "+m.ReceiptID, err)
	}
	return nil
}

// FindReceiptByID retrieves a specific receipt scoped to the given account.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, accountID *string, receiptID string) (*domain.Receipt, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+receiptColumns+`
		FROM receipts
		WHERE receipt_id = $1 AND ($2::text IS NULL OR account_id = $2)
	`, receiptID, accountID)

	m, err := scanReceipt(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find receipt "+receiptID, err)
	}

	rec := mapping.ToDomainReceipt(m)
	return &rec, nil
}

// ListReceipts retrieves a page of receipts ordered by (booked_on, created_at) descending.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.Receipt, *string, error) {
	args := []any{accountID, limit + 1}
	query := `
		SELECT ` + receiptColumns + `
		FROM receipts
		WHERE ($1::text IS NULL OR account_id = $1)`

	if nextToken != nil {
		bookedOn, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` AND (booked_on, created_at) < ($3, $4)`
		args = append(args, bookedOn, createdAt)
	}
	query += `
		ORDER BY booked_on DESC, created_at DESC
		LIMIT $2`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list receipts", err)
	}
	defer rows.Close()

	var ms []models.Receipt
	for rows.Next() {
		m, err := scanReceipt(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan receipt row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate receipt rows", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.BookedOn, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainReceiptSlice(ms), token, nil
}
