package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/klarbuch/klarbuch_app/internal/apperrors"
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
	portssvc "github.com/klarbuch/klarbuch_app/internal/core/ports/services"
	"github.com/klarbuch/klarbuch_app/internal/utils/docnum"
)

// numberingService implements the NumberingService interface
type numberingService struct {
	BaseService
	numberingRepo portsrepo.NumberingRepository
}

// NewNumberingService creates a new numbering service
func NewNumberingService(repo portsrepo.NumberingRepository) portssvc.NumberingService {
	return &numberingService{
		numberingRepo: repo,
	}
}

// Ensure numberingService implements the NumberingService interface
var _ portssvc.NumberingService = (*numberingService)(nil)

// NextNumber allocates the next sequence value for a key and renders its
// display form. The uniqueness guarantee lives in the repository transaction;
// this layer validates inputs and formats the result.
func (s *numberingService) NextNumber(ctx context.Context, key, template string, mode domain.PeriodMode, at time.Time) (int64, string, error) {
	if strings.TrimSpace(key) == "" {
		return 0, "", fmt.Errorf("%w: numbering key must not be empty", apperrors.ErrValidation)
	}
	if !mode.IsValid() {
		return 0, "", fmt.Errorf("%w: unknown period mode %q", apperrors.ErrValidation, mode)
	}

	seq, err := s.numberingRepo.AllocateNext(ctx, key, mode, at)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate document number",
			slog.String("key", key),
			slog.String("mode", string(mode)))
		return 0, "", fmt.Errorf("failed to allocate number for key %s: %w", key, err)
	}

	rendered := docnum.Render(template, seq, at)
	s.LogDebug(ctx, "Allocated document number",
		slog.String("key", key),
		slog.Int64("seq", seq),
		slog.String("number", rendered))
	return seq, rendered, nil
}
