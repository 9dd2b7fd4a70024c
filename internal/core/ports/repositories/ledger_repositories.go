package repositories

import (
	"context"

	"github.com/klarbuch/klarbuch_app/internal/core/domain"
)

// LedgerEntryReader defines read operations for ledger entry data
type LedgerEntryReader interface {
	// FindEntryByID retrieves a specific ledger entry by its unique identifier.
	FindEntryByID(ctx context.Context, accountID *string, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a paginated list of ledger entries using token-based pagination.
	ListEntries(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerEntryWriter defines write operations for ledger entry data
type LedgerEntryWriter interface {
	// SaveEntry persists a new ledger entry.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines all ledger-entry repository interfaces
type LedgerRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}

// TaxCategoryRepository defines read access to the static tax category lookup.
type TaxCategoryRepository interface {
	// FindCategoryByCode resolves one category. Returns apperrors.ErrNotFound
	// for unknown codes.
	FindCategoryByCode(ctx context.Context, code string) (*domain.TaxCategory, error)

	// ListCategories returns all categories, ordered by code.
	ListCategories(ctx context.Context) ([]domain.TaxCategory, error)
}

// SettingsRepository defines read access to per-account settings.
type SettingsRepository interface {
	// GetSettings returns the settings for the given account scope (nil for
	// single-tenant deployments). A missing row yields the zero-value
	// defaults, not an error.
	GetSettings(ctx context.Context, accountID *string) (domain.AccountSettings, error)
}
