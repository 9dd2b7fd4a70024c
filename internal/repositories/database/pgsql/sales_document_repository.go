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

type PgxSalesDocumentRepository struct {
	BaseRepository
}

// newPgxSalesDocumentRepository creates a new repository for order and quote data.
func newPgxSalesDocumentRepository(pool *pgxpool.Pool) portsrepo.SalesDocumentRepositoryFacade {
	return &PgxSalesDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSalesDocumentRepository implements portsrepo.SalesDocumentRepositoryFacade
var _ portsrepo.SalesDocumentRepositoryFacade = (*PgxSalesDocumentRepository)(nil)

const salesDocColumns = `
	document_id, account_id, doc_type, number, customer_name,
	net_cents, tax_cents, gross_cents, tax_rate_percent,
	issue_date, status,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSalesDocument(row pgx.Row) (models.SalesDocument, error) {
	var m models.SalesDocument
	err := row.Scan(
		&m.DocumentID, &m.AccountID, &m.DocType, &m.Number, &m.CustomerName,
		&m.NetCents, &m.TaxCents, &m.GrossCents, &m.TaxRatePercent,
		&m.IssueDate, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveSalesDocument persists a new order or quote.
func (r *PgxSalesDocumentRepository) SaveSalesDocument(ctx context.Context, doc domain.SalesDocument) error {
	m := mapping.ToModelSalesDocument(doc)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO sales_documents (`+salesDocColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`,
		m.DocumentID, m.AccountID, m.DocType, m.Number, m.CustomerName,
		m.NetCents, m.TaxCents, m.GrossCents, m.TaxRatePercent,
		m.IssueDate, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if isUniqueViolation(err) {
		return apperrors.ErrDuplicate
	}
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert sales document "+m.DocumentID, err)
	}
	return nil
}

// FindSalesDocumentByID retrieves a specific order or quote scoped to the given account.
func (r *PgxSalesDocumentRepository) FindSalesDocumentByID(ctx context.Context, accountID *string, documentID string) (*domain.SalesDocument, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+salesDocColumns+`
		FROM sales_documents
		WHERE document_id = $1 AND ($2::text IS NULL OR account_id = $2)
	`, documentID, accountID)

	m, err := scanSalesDocument(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find sales document "+documentID, err)
	}

	doc := mapping.ToDomainSalesDocument(m)
	return &doc, nil
}

// ListSalesDocuments retrieves a page of one document type ordered by (issue_date, created_at) descending.
func (r *PgxSalesDocumentRepository) ListSalesDocuments(ctx context.Context, accountID *string, docType domain.SalesDocType, limit int, nextToken *string) ([]domain.SalesDocument, *string, error) {
	args := []any{accountID, string(docType), limit + 1}
	query := `
		SELECT ` + salesDocColumns + `
		FROM sales_documents
		WHERE ($1::text IS NULL OR account_id = $1) AND doc_type = $2`

	if nextToken != nil {
		issueDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` AND (issue_date, created_at) < ($4, $5)`
		args = append(args, issueDate, createdAt)
	}
	query += `
		ORDER BY issue_date DESC, created_at DESC
		LIMIT $3`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list sales documents", err)
	}
	defer rows.Close()

	var ms []models.SalesDocument
	for rows.Next() {
		m, err := scanSalesDocument(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan sales document row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate sales document rows", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.IssueDate, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainSalesDocumentSlice(ms), token, nil
}

// UpdateSalesDocumentStatus updates the lifecycle state of an order or quote.
func (r *PgxSalesDocumentRepository) UpdateSalesDocumentStatus(ctx context.Context, accountID *string, documentID string, status domain.SalesDocStatus, updatedBy string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE sales_documents
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE document_id = $1 AND ($2::text IS NULL OR account_id = $2)
	`, documentID, accountID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update sales document status "+documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
