package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/klarbuch/klarbuch_app/internal/apperrors"
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
	portssvc "github.com/klarbuch/klarbuch_app/internal/core/ports/services"
	"github.com/klarbuch/klarbuch_app/internal/dto"
	"github.com/klarbuch/klarbuch_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	categoryRepo portsrepo.TaxCategoryRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(repo portsrepo.LedgerRepositoryFacade, categoryRepo portsrepo.TaxCategoryRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:   repo,
		categoryRepo: categoryRepo,
	}
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// resolveRate picks the effective VAT rate for a new entry. An explicit rate
// wins; otherwise the named category's default applies. Transfers never carry
// a rate, whatever the request says.
func (s *ledgerService) resolveRate(ctx context.Context, kind domain.EntryKind, explicit *decimal.Decimal, categoryCode string) (*decimal.Decimal, error) {
	var category *domain.TaxCategory
	if categoryCode != "" {
		var err error
		category, err = s.categoryRepo.FindCategoryByCode(ctx, categoryCode)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tax category %s: %w", categoryCode, err)
		}
	}

	if kind == domain.EntryTransfer {
		return nil, nil
	}
	if explicit != nil {
		return explicit, nil
	}
	if category != nil {
		return category.DefaultVATRatePercent, nil
	}
	return nil, nil
}

// CreateEntry books a manual income/expense/transfer entry. The net and VAT
// legs are derived from the gross amount and the resolved rate.
func (s *ledgerService) CreateEntry(ctx context.Context, accountID *string, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	kind := domain.EntryKind(req.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, req.Kind)
	}

	bookedOn, err := dto.ParseDate(req.BookedOn)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking date: %s", apperrors.ErrValidation, req.BookedOn)
	}

	rate, err := s.resolveRate(ctx, kind, req.VATRatePercent, req.CategoryCode)
	if err != nil {
		return nil, err
	}

	amount, err := money.Split(req.GrossCents, rate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	actor := auditActor(accountID)
	entry := domain.LedgerEntry{
		EntryID:        uuid.NewString(),
		AccountID:      accountID,
		Kind:           kind,
		Description:    req.Description,
		CategoryCode:   req.CategoryCode,
		NetCents:       amount.NetCents,
		VATCents:       amount.TaxCents,
		GrossCents:     amount.GrossCents,
		VATRatePercent: rate,
		BookedOn:       bookedOn,
		InvoiceID:      req.InvoiceID,
		ReceiptID:      req.ReceiptID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry", slog.String("kind", req.Kind))
		return nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}

	s.LogInfo(ctx, "Ledger entry booked",
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(kind)),
		slog.Int64("gross_cents", entry.GrossCents))
	return &entry, nil
}

// GetEntryByID retrieves a single ledger entry within the account scope.
func (s *ledgerService) GetEntryByID(ctx context.Context, accountID *string, entryID string) (*domain.LedgerEntry, error) {
	return s.ledgerRepo.FindEntryByID(ctx, accountID, entryID)
}

// ListEntries retrieves a page of ledger entries, newest first.
func (s *ledgerService) ListEntries(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	entries, token, err := s.ledgerRepo.ListEntries(ctx, accountID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries")
		return nil, nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return entries, token, nil
}

// ListCategories returns the static tax category lookup.
func (s *ledgerService) ListCategories(ctx context.Context) ([]domain.TaxCategory, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax categories")
		return nil, fmt.Errorf("failed to list tax categories: %w", err)
	}
	if categories == nil {
		categories = []domain.TaxCategory{}
	}
	return categories, nil
}
