package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus mirrors domain.InvoiceStatus at the persistence layer.
type InvoiceStatus string

const (
	InvoiceOpen      InvoiceStatus = "OPEN"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// Invoice represents a row of the invoices table.
// net_cents + tax_cents == gross_cents is enforced by a check constraint.
type Invoice struct {
	InvoiceID      string           `db:"invoice_id"`
	AccountID      *string          `db:"account_id"` // Nullable; NULL in single-tenant deployments
	Number         string           `db:"number"`
	CustomerName   string           `db:"customer_name"`
	NetCents       int64            `db:"net_cents"`
	TaxCents       int64            `db:"tax_cents"`
	GrossCents     int64            `db:"gross_cents"`
	TaxRatePercent *decimal.Decimal `db:"tax_rate_percent"` // Nullable, NULL means not VAT-relevant
	IssueDate      time.Time        `db:"issue_date"`
	PaidAt         *time.Time       `db:"paid_at"` // Nullable; older rows may rely on status alone
	Status         InvoiceStatus    `db:"status"`
	AuditFields
}
