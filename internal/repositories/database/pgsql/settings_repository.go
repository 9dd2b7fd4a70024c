package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klarbuch/klarbuch_app/internal/apperrors"
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
)

// settingsRepository reads per-account settings.
type settingsRepository struct {
	BaseRepository
}

// newSettingsRepository creates a new settings repository
func newSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &settingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingsRepository = (*settingsRepository)(nil)

// GetSettings returns the settings for an account scope. A missing row (or a
// not-yet-migrated settings table) yields the zero-value defaults.
func (r *settingsRepository) GetSettings(ctx context.Context, accountID *string) (domain.AccountSettings, error) {
	var smallBusiness bool
	row := r.Pool.QueryRow(ctx, `
		SELECT small_business_scheme
		FROM account_settings
		WHERE ($1::text IS NULL AND account_id IS NULL) OR account_id = $1
	`, accountID)
	err := row.Scan(&smallBusiness)
	if errors.Is(err, pgx.ErrNoRows) || isSchemaDrift(err) {
		return domain.AccountSettings{AccountID: accountID}, nil
	}
	if err != nil {
		return domain.AccountSettings{}, apperrors.NewAppError(500, "failed to read account settings", err)
	}

	return domain.AccountSettings{AccountID: accountID, SmallBusinessScheme: smallBusiness}, nil
}
