package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesDocument represents a row of the sales_documents table, shared by
// orders and quotes via the doc_type discriminator. These documents never
// feed the ledger aggregation.
type SalesDocument struct {
	DocumentID     string           `db:"document_id"`
	AccountID      *string          `db:"account_id"`
	DocType        string           `db:"doc_type"` // ORDER | QUOTE
	Number         string           `db:"number"`
	CustomerName   string           `db:"customer_name"`
	NetCents       int64            `db:"net_cents"`
	TaxCents       int64            `db:"tax_cents"`
	GrossCents     int64            `db:"gross_cents"`
	TaxRatePercent *decimal.Decimal `db:"tax_rate_percent"`
	IssueDate      time.Time        `db:"issue_date"`
	Status         string           `db:"status"` // OPEN | DONE | CANCELLED
	AuditFields
}
