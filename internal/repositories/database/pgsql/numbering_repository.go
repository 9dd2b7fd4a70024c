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
)

// numberingLockID is the advisory lock key serializing all allocations.
// Allocation is rare and must never race, so one coarse lock across all
// counter keys is acceptable.
const numberingLockID = 83215601

type PgxNumberingRepository struct {
	BaseRepository
}

// newPgxNumberingRepository creates a new repository for sequence counter data.
func newPgxNumberingRepository(pool *pgxpool.Pool) portsrepo.NumberingRepository {
	return &PgxNumberingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxNumberingRepository implements portsrepo.NumberingRepository
var _ portsrepo.NumberingRepository = (*PgxNumberingRepository)(nil)

// AllocateNext hands out the next sequence value for key inside one
// transaction. The advisory lock is transaction-scoped, so it is released on
// commit and on rollback alike; a caller that times out waiting on it leaves
// no counter mutation behind. The returned value is only valid once the
// commit has succeeded, which is why all error paths return before it.
func (r *PgxNumberingRepository) AllocateNext(ctx context.Context, key string, mode domain.PeriodMode, at time.Time) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, numberingLockID); err != nil {
		return 0, apperrors.NewAppError(500, "failed to acquire numbering lock", err)
	}

	currentPeriod := mode.PeriodValue(at)

	var next int64
	var storedPeriodValue string
	row := tx.QueryRow(ctx, `
		SELECT next_value, period_value
		FROM numbering_counters
		WHERE counter_key = $1
	`, key)
	err = row.Scan(&next, &storedPeriodValue)

	var seq int64
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// Lazy creation: first allocation for this key
		seq = 1
		_, err = tx.Exec(ctx, `
			INSERT INTO numbering_counters (counter_key, next_value, period, period_value, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, 2, $2, $3, $4, $5, $4, $5)
		`, key, string(mode), currentPeriod, at, "system")
		if err != nil {
			return 0, apperrors.NewAppError(500, "failed to insert counter "+key, err)
		}
	case err != nil:
		return 0, apperrors.NewAppError(500, "failed to read counter "+key, err)
	case mode != domain.PeriodNone && storedPeriodValue != currentPeriod:
		// Period rollover: the counter restarts at 1 for the new period
		seq = 1
		_, err = tx.Exec(ctx, `
			UPDATE numbering_counters
			SET next_value = 2, period = $2, period_value = $3, last_updated_at = $4
			WHERE counter_key = $1
		`, key, string(mode), currentPeriod, at)
		if err != nil {
			return 0, apperrors.NewAppError(500, "failed to reset counter "+key, err)
		}
	default:
		seq = next
		_, err = tx.Exec(ctx, `
			UPDATE numbering_counters
			SET next_value = next_value + 1, last_updated_at = $2
			WHERE counter_key = $1
		`, key, at)
		if err != nil {
			return 0, apperrors.NewAppError(500, "failed to increment counter "+key, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return seq, nil
}

// FindCounterByKey retrieves the current state of one counter.
func (r *PgxNumberingRepository) FindCounterByKey(ctx context.Context, key string) (*domain.NumberingCounter, error) {
	var m models.NumberingCounter
	row := r.Pool.QueryRow(ctx, `
		SELECT counter_key, next_value, period, period_value, created_at, created_by, last_updated_at, last_updated_by
		FROM numbering_counters
		WHERE counter_key = $1
	`, key)
	err := row.Scan(&m.CounterKey, &m.NextValue, &m.Period, &m.PeriodValue,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find counter "+key, err)
	}

	counter := mapping.ToDomainNumberingCounter(m)
	return &counter, nil
}
