package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry represents a row of the ledger_entries table.
// vat_rate_percent NULL means "not VAT-relevant", which is distinct from 0%.
// invoice_id/receipt_id link the entry to the document whose payment it
// records; linked documents are excluded from direct document aggregation.
type LedgerEntry struct {
	EntryID        string           `db:"entry_id"`
	AccountID      *string          `db:"account_id"`
	Kind           string           `db:"kind"` // INCOME | EXPENSE | TRANSFER
	Description    string           `db:"description"`
	CategoryCode   string           `db:"category_code"`
	NetCents       int64            `db:"net_cents"`
	VATCents       int64            `db:"vat_cents"`
	GrossCents     int64            `db:"gross_cents"`
	VATRatePercent *decimal.Decimal `db:"vat_rate_percent"`
	BookedOn       time.Time        `db:"booked_on"`
	InvoiceID      *string          `db:"invoice_id"`
	ReceiptID      *string          `db:"receipt_id"`
	AuditFields
}

// TaxCategory represents a row of the static tax_categories lookup table.
type TaxCategory struct {
	Code                  string           `db:"code"`
	Name                  string           `db:"name"`
	ChartCode             string           `db:"chart_code"`
	DefaultVATRatePercent *decimal.Decimal `db:"default_vat_rate_percent"`
}

// AccountSettings represents a row of the account_settings table.
type AccountSettings struct {
	AccountID           *string `db:"account_id"`
	SmallBusinessScheme bool    `db:"small_business_scheme"`
}
