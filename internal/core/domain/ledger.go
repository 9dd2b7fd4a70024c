package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies a manually booked ledger entry.
type EntryKind string

const (
	EntryIncome   EntryKind = "INCOME"
	EntryExpense  EntryKind = "EXPENSE"
	EntryTransfer EntryKind = "TRANSFER"
)

// IsValid reports whether the kind is one of the known values.
func (k EntryKind) IsValid() bool {
	switch k {
	case EntryIncome, EntryExpense, EntryTransfer:
		return true
	}
	return false
}

// LedgerEntry is a manually entered income/expense/transfer record, independent
// of any document. A nil VATRatePercent means the entry is not VAT-relevant,
// which is distinct from a 0% rate. InvoiceID/ReceiptID optionally link the
// entry to the document whose payment it records; linked documents are excluded
// from direct document aggregation to avoid double counting.
type LedgerEntry struct {
	EntryID        string           `json:"entryID"`
	AccountID      *string          `json:"accountID,omitempty"`
	Kind           EntryKind        `json:"kind"`
	Description    string           `json:"description"`
	CategoryCode   string           `json:"categoryCode"`
	NetCents       int64            `json:"netCents"`
	VATCents       int64            `json:"vatCents"`
	GrossCents     int64            `json:"grossCents"`
	VATRatePercent *decimal.Decimal `json:"vatRatePercent,omitempty"`
	BookedOn       time.Time        `json:"bookedOn"`
	InvoiceID      *string          `json:"invoiceID,omitempty"`
	ReceiptID      *string          `json:"receiptID,omitempty"`
	AuditFields
}

// TaxCategory is static reference data mapping a category code to a display
// name, an accounting-chart code, and a default VAT rate (nil when the
// category is not VAT-relevant).
type TaxCategory struct {
	Code                  string           `json:"code"`
	Name                  string           `json:"name"`
	ChartCode             string           `json:"chartCode"`
	DefaultVATRatePercent *decimal.Decimal `json:"defaultVATRatePercent,omitempty"`
}

// AccountSettings holds the per-account toggles the reporting facade consults.
// SmallBusinessScheme is the binary VAT-exemption regime: when set, no VAT is
// charged or reported for the account.
type AccountSettings struct {
	AccountID           *string `json:"accountID,omitempty"`
	SmallBusinessScheme bool    `json:"smallBusinessScheme"`
}
