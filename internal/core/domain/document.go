package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceOpen      InvoiceStatus = "OPEN"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// SalesDocType discriminates the document kinds that share the sales_documents table.
type SalesDocType string

const (
	DocTypeOrder SalesDocType = "ORDER"
	DocTypeQuote SalesDocType = "QUOTE"
)

// SalesDocStatus indicates the lifecycle state of an order or quote.
type SalesDocStatus string

const (
	SalesDocOpen      SalesDocStatus = "OPEN"
	SalesDocDone      SalesDocStatus = "DONE"
	SalesDocCancelled SalesDocStatus = "CANCELLED"
)

// Invoice is a billed financial document. It counts as income only once
// realized: PaidAt set, or status PAID for rows predating payment timestamps.
// NetCents + TaxCents == GrossCents always holds.
type Invoice struct {
	InvoiceID      string           `json:"invoiceID"`
	AccountID      *string          `json:"accountID,omitempty"` // nil in single-tenant deployments
	Number         string           `json:"number"`              // allocator-assigned display number, unique per account
	CustomerName   string           `json:"customerName"`
	NetCents       int64            `json:"netCents"`
	TaxCents       int64            `json:"taxCents"`
	GrossCents     int64            `json:"grossCents"`
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent,omitempty"` // nil means not VAT-relevant, distinct from 0%
	IssueDate      time.Time        `json:"issueDate"`
	PaidAt         *time.Time       `json:"paidAt,omitempty"`
	Status         InvoiceStatus    `json:"status"`
	AuditFields
}

// Realized reports whether the invoice counts as income. Cancellation always
// wins, even over a previously recorded payment.
func (i Invoice) Realized() bool {
	if i.Status == InvoiceCancelled {
		return false
	}
	return i.PaidAt != nil || i.Status == InvoicePaid
}

// Receipt is a point-of-sale document. Receipts have no unpaid state; every
// receipt counts as income on its booked date.
type Receipt struct {
	ReceiptID      string           `json:"receiptID"`
	AccountID      *string          `json:"accountID,omitempty"`
	Number         string           `json:"number"`
	Description    string           `json:"description"`
	NetCents       int64            `json:"netCents"`
	TaxCents       int64            `json:"taxCents"`
	GrossCents     int64            `json:"grossCents"`
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent,omitempty"`
	BookedOn       time.Time        `json:"bookedOn"`
	AuditFields
}

// SalesDocument covers orders and quotes. They carry amounts for reference but
// never feed the ledger aggregation; only invoices and receipts do.
type SalesDocument struct {
	DocumentID     string           `json:"documentID"`
	AccountID      *string          `json:"accountID,omitempty"`
	DocType        SalesDocType     `json:"docType"`
	Number         string           `json:"number"`
	CustomerName   string           `json:"customerName"`
	NetCents       int64            `json:"netCents"`
	TaxCents       int64            `json:"taxCents"`
	GrossCents     int64            `json:"grossCents"`
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent,omitempty"`
	IssueDate      time.Time        `json:"issueDate"`
	Status         SalesDocStatus   `json:"status"`
	AuditFields
}
