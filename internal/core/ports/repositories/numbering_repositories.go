package repositories

import (
	"context"
	"time"

	"github.com/klarbuch/klarbuch_app/internal/core/domain"
)

// NumberingRepository defines the persistence operations for sequence counters.
//
// AllocateNext must perform the whole read-modify-write inside one storage
// transaction under an exclusive lock: no two concurrent callers may ever
// receive the same value, and no value may be returned without a committed
// counter update. Counter rows are created lazily on first allocation and a
// differing period snapshot resets the counter to 1 (period rollover).
type NumberingRepository interface {
	AllocateNext(ctx context.Context, key string, mode domain.PeriodMode, at time.Time) (int64, error)

	// FindCounterByKey retrieves the current counter state, mainly for
	// diagnostics. Returns apperrors.ErrNotFound when no allocation has
	// happened for the key yet.
	FindCounterByKey(ctx context.Context, key string) (*domain.NumberingCounter, error)
}
