package dto

import (
	"time"

	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the data needed to book a manual ledger entry.
// VATRatePercent nil means the entry is not VAT-relevant (distinct from 0%);
// when a category code is given and no rate, the category's default rate applies.
type CreateLedgerEntryRequest struct {
	Kind           string           `json:"kind" binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Description    string           `json:"description"`
	CategoryCode   string           `json:"categoryCode"`
	GrossCents     int64            `json:"grossCents" binding:"gte=0"`
	VATRatePercent *decimal.Decimal `json:"vatRatePercent"`
	BookedOn       string           `json:"bookedOn" binding:"required,datetime=2006-01-02"`
	InvoiceID      *string          `json:"invoiceID"`
	ReceiptID      *string          `json:"receiptID"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID        string           `json:"entryID"`
	AccountID      *string          `json:"accountID,omitempty"`
	Kind           string           `json:"kind"`
	Description    string           `json:"description"`
	CategoryCode   string           `json:"categoryCode"`
	CategoryName   string           `json:"categoryName,omitempty"`
	NetCents       int64            `json:"netCents"`
	VATCents       int64            `json:"vatCents"`
	GrossCents     int64            `json:"grossCents"`
	VATRatePercent *decimal.Decimal `json:"vatRatePercent,omitempty"`
	BookedOn       string           `json:"bookedOn"`
	InvoiceID      *string          `json:"invoiceID,omitempty"`
	ReceiptID      *string          `json:"receiptID,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// ListLedgerEntriesResponse is a paginated list of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// TaxCategoryResponse defines the data returned for a tax category.
type TaxCategoryResponse struct {
	Code                  string           `json:"code"`
	Name                  string           `json:"name"`
	ChartCode             string           `json:"chartCode"`
	DefaultVATRatePercent *decimal.Decimal `json:"defaultVATRatePercent,omitempty"`
}

// ToLedgerEntryResponse converts a domain LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:        e.EntryID,
		AccountID:      e.AccountID,
		Kind:           string(e.Kind),
		Description:    e.Description,
		CategoryCode:   e.CategoryCode,
		NetCents:       e.NetCents,
		VATCents:       e.VATCents,
		GrossCents:     e.GrossCents,
		VATRatePercent: e.VATRatePercent,
		BookedOn:       e.BookedOn.Format(DateLayout),
		InvoiceID:      e.InvoiceID,
		ReceiptID:      e.ReceiptID,
		CreatedAt:      e.CreatedAt,
	}
}

// ToListLedgerEntriesResponse converts a page of domain LedgerEntries to a list response.
func ToListLedgerEntriesResponse(es []domain.LedgerEntry, nextToken *string) ListLedgerEntriesResponse {
	out := ListLedgerEntriesResponse{Entries: make([]LedgerEntryResponse, len(es)), NextToken: nextToken}
	for i, e := range es {
		out.Entries[i] = ToLedgerEntryResponse(e)
	}
	return out
}

// ToTaxCategoryResponses converts domain TaxCategories to response DTOs.
func ToTaxCategoryResponses(cats []domain.TaxCategory) []TaxCategoryResponse {
	out := make([]TaxCategoryResponse, len(cats))
	for i, c := range cats {
		out[i] = TaxCategoryResponse{
			Code:                  c.Code,
			Name:                  c.Name,
			ChartCode:             c.ChartCode,
			DefaultVATRatePercent: c.DefaultVATRatePercent,
		}
	}
	return out
}
