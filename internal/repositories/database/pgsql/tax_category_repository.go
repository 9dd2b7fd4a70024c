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
)

// taxCategoryRepository reads the static tax_categories lookup seeded by migrations.
type taxCategoryRepository struct {
	BaseRepository
}

// newTaxCategoryRepository creates a new tax category repository
func newTaxCategoryRepository(pool *pgxpool.Pool) portsrepo.TaxCategoryRepository {
	return &taxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TaxCategoryRepository = (*taxCategoryRepository)(nil)

// FindCategoryByCode resolves one category by its code.
func (r *taxCategoryRepository) FindCategoryByCode(ctx context.Context, code string) (*domain.TaxCategory, error) {
	var m models.TaxCategory
	row := r.Pool.QueryRow(ctx, `
		SELECT code, name, chart_code, default_vat_rate_percent
		FROM tax_categories
		WHERE code = $1
	`, code)
	err := row.Scan(&m.Code, &m.Name, &m.ChartCode, &m.DefaultVATRatePercent)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find tax category "+code, err)
	}

	cat := mapping.ToDomainTaxCategory(m)
	return &cat, nil
}

// ListCategories returns all categories ordered by code.
func (r *taxCategoryRepository) ListCategories(ctx context.Context) ([]domain.TaxCategory, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT code, name, chart_code, default_vat_rate_percent
		FROM tax_categories
		ORDER BY code
	`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list tax categories", err)
	}
	defer rows.Close()

	var ms []models.TaxCategory
	for rows.Next() {
		var m models.TaxCategory
		if err := rows.Scan(&m.Code, &m.Name, &m.ChartCode, &m.DefaultVATRatePercent); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax category row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate tax category rows", err)
	}

	return mapping.ToDomainTaxCategorySlice(ms), nil
}
