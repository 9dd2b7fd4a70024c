package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt represents a row of the receipts table. Receipts have no status:
// a point-of-sale receipt is realized income on its booked date.
type Receipt struct {
	ReceiptID      string           `db:"receipt_id"`
	AccountID      *string          `db:"account_id"`
	Number         string           `db:"number"`
	Description    string           `db:"description"`
	NetCents       int64            `db:"net_cents"`
	TaxCents       int64            `db:"tax_cents"`
	GrossCents     int64            `db:"gross_cents"`
	TaxRatePercent *decimal.Decimal `db:"tax_rate_percent"`
	BookedOn       time.Time        `db:"booked_on"`
	AuditFields
}
