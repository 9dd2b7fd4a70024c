package services

import (
	"context"

	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	"github.com/klarbuch/klarbuch_app/internal/dto"
)

// LedgerSvcFacade defines the operations for manually booked ledger entries
// and the static tax category lookup.
type LedgerSvcFacade interface {
	// CreateEntry books a new entry. When the request names a tax category
	// but no explicit rate, the category's default VAT rate applies.
	// Transfer entries never carry a rate.
	CreateEntry(ctx context.Context, accountID *string, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error)

	GetEntryByID(ctx context.Context, accountID *string, entryID string) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
	ListCategories(ctx context.Context) ([]domain.TaxCategory, error)
}
