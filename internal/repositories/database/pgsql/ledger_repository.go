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

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entry data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerEntryColumns = `
	entry_id, account_id, kind, description, category_code,
	net_cents, vat_cents, gross_cents, vat_rate_percent, booked_on,
	invoice_id, receipt_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanLedgerEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID, &m.AccountID, &m.Kind, &m.Description, &m.CategoryCode,
		&m.NetCents, &m.VATCents, &m.GrossCents, &m.VATRatePercent, &m.BookedOn,
		&m.InvoiceID, &m.ReceiptID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveEntry persists a new ledger entry.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO ledger_entries (`+ledgerEntryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`,
		m.EntryID, m.AccountID, m.Kind, m.Description, m.CategoryCode,
		m.NetCents, m.VATCents, m.GrossCents, m.VATRatePercent, m.BookedOn,
		m.InvoiceID, m.ReceiptID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger entry "+m.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves a specific ledger entry scoped to the given account.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, accountID *string, entryID string) (*domain.LedgerEntry, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+ledgerEntryColumns+`
		FROM ledger_entries
		WHERE entry_id = $1 AND ($2::text IS NULL OR account_id = $2)
	`, entryID, accountID)

	m, err := scanLedgerEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find ledger entry "+entryID, err)
	}

	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// ListEntries retrieves a page of ledger entries ordered by (booked_on, created_at) descending.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := []any{accountID, limit + 1}
	query := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries
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
		return nil, nil, apperrors.NewAppError(500, "failed to list ledger entries", err)
	}
	defer rows.Close()

	var ms []models.LedgerEntry
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate ledger entry rows", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.BookedOn, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainLedgerEntrySlice(ms), token, nil
}
