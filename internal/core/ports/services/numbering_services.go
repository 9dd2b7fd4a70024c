package services

import (
	"context"
	"time"

	"github.com/klarbuch/klarbuch_app/internal/core/domain"
)

// NumberingService allocates human-readable document numbers.
//
// NextNumber returns the allocated sequence value together with its rendered
// display form. Values for a fixed key are distinct and strictly increasing by
// one, except across a period rollover, where the counter restarts at 1.
// Callers must not persist a document when allocation fails: no number, no
// document.
type NumberingService interface {
	NextNumber(ctx context.Context, key, template string, mode domain.PeriodMode, at time.Time) (int64, string, error)
}
