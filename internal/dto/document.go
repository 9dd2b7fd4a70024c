package dto

import (
	"time"

	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a wire-format calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// CreateInvoiceRequest defines the data needed to create a new invoice.
// Exactly one of grossCents and netCents must be supplied; the other leg is
// derived from the tax rate.
type CreateInvoiceRequest struct {
	CustomerName   string           `json:"customerName" binding:"required"`
	GrossCents     *int64           `json:"grossCents"`
	NetCents       *int64           `json:"netCents"`
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent"` // nil means not VAT-relevant
	IssueDate      string           `json:"issueDate" binding:"required,datetime=2006-01-02"`
}

// InvoiceResponse defines the data returned for an invoice. Mirrors domain.Invoice.
type InvoiceResponse struct {
	InvoiceID      string           `json:"invoiceID"`
	AccountID      *string          `json:"accountID,omitempty"`
	Number         string           `json:"number"`
	CustomerName   string           `json:"customerName"`
	NetCents       int64            `json:"netCents"`
	TaxCents       int64            `json:"taxCents"`
	GrossCents     int64            `json:"grossCents"`
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent,omitempty"`
	IssueDate      string           `json:"issueDate"`
	PaidAt         *time.Time       `json:"paidAt,omitempty"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// ListInvoicesResponse is a paginated list of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// RecordPaymentRequest records the payment of an invoice.
type RecordPaymentRequest struct {
	PaidAt string `json:"paidAt" binding:"required,datetime=2006-01-02"`
}

// ToInvoiceResponse converts a domain Invoice to its response DTO.
func ToInvoiceResponse(inv domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		AccountID:      inv.AccountID,
		Number:         inv.Number,
		CustomerName:   inv.CustomerName,
		NetCents:       inv.NetCents,
		TaxCents:       inv.TaxCents,
		GrossCents:     inv.GrossCents,
		TaxRatePercent: inv.TaxRatePercent,
		IssueDate:      inv.IssueDate.Format(DateLayout),
		PaidAt:         inv.PaidAt,
		Status:         string(inv.Status),
		CreatedAt:      inv.CreatedAt,
	}
}

// ToListInvoicesResponse converts a page of domain Invoices to a list response.
func ToListInvoicesResponse(invs []domain.Invoice, nextToken *string) ListInvoicesResponse {
	out := ListInvoicesResponse{Invoices: make([]InvoiceResponse, len(invs)), NextToken: nextToken}
	for i, inv := range invs {
		out.Invoices[i] = ToInvoiceResponse(inv)
	}
	return out
}

// CreateReceiptRequest defines the data needed to record a point-of-sale receipt.
type CreateReceiptRequest struct {
	Description    string           `json:"description"`
	GrossCents     int64            `json:"grossCents" binding:"gte=0"`
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent"`
	BookedOn       string           `json:"bookedOn" binding:"required,datetime=2006-01-02"`
}

// ReceiptResponse defines the data returned for a receipt. Mirrors domain.Receipt.
type ReceiptResponse struct {
	ReceiptID      string           `json:"receiptID"`
	AccountID      *string          `json:"accountID,omitempty"`
	Number         string           `json:"number"`
	Description    string           `json:"description"`
	NetCents       int64            `json:"netCents"`
	TaxCents       int64            `json:"taxCents"`
	GrossCents     int64            `json:"grossCents"`
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent,omitempty"`
	BookedOn       string           `json:"bookedOn"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// ListReceiptsResponse is a paginated list of receipts.
type ListReceiptsResponse struct {
	Receipts  []ReceiptResponse `json:"receipts"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToReceiptResponse converts a domain Receipt to its response DTO.
func ToReceiptResponse(r domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:      r.ReceiptID,
		AccountID:      r.AccountID,
		Number:         r.Number,
		Description:    r.Description,
		NetCents:       r.NetCents,
		TaxCents:       r.TaxCents,
		GrossCents:     r.GrossCents,
		TaxRatePercent: r.TaxRatePercent,
		BookedOn:       r.BookedOn.Format(DateLayout),
		CreatedAt:      r.CreatedAt,
	}
}

// ToListReceiptsResponse converts a page of domain Receipts to a list response.
func ToListReceiptsResponse(rs []domain.Receipt, nextToken *string) ListReceiptsResponse {
	out := ListReceiptsResponse{Receipts: make([]ReceiptResponse, len(rs)), NextToken: nextToken}
	for i, r := range rs {
		out.Receipts[i] = ToReceiptResponse(r)
	}
	return out
}

// CreateSalesDocumentRequest defines the data needed to create an order or quote.
type CreateSalesDocumentRequest struct {
	CustomerName   string           `json:"customerName" binding:"required"`
	GrossCents     *int64           `json:"grossCents"`
	NetCents       *int64           `json:"netCents"`
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent"`
	IssueDate      string           `json:"issueDate" binding:"required,datetime=2006-01-02"`
}

// UpdateSalesDocStatusRequest changes the lifecycle state of an order or quote.
type UpdateSalesDocStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=OPEN DONE CANCELLED"`
}

// SalesDocumentResponse defines the data returned for an order or quote.
type SalesDocumentResponse struct {
	DocumentID     string           `json:"documentID"`
	AccountID      *string          `json:"accountID,omitempty"`
	DocType        string           `json:"docType"`
	Number         string           `json:"number"`
	CustomerName   string           `json:"customerName"`
	NetCents       int64            `json:"netCents"`
	TaxCents       int64            `json:"taxCents"`
	GrossCents     int64            `json:"grossCents"`
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent,omitempty"`
	IssueDate      string           `json:"issueDate"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// ListSalesDocumentsResponse is a paginated list of orders or quotes.
type ListSalesDocumentsResponse struct {
	Documents []SalesDocumentResponse `json:"documents"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// ToSalesDocumentResponse converts a domain SalesDocument to its response DTO.
func ToSalesDocumentResponse(d domain.SalesDocument) SalesDocumentResponse {
	return SalesDocumentResponse{
		DocumentID:     d.DocumentID,
		AccountID:      d.AccountID,
		DocType:        string(d.DocType),
		Number:         d.Number,
		CustomerName:   d.CustomerName,
		NetCents:       d.NetCents,
		TaxCents:       d.TaxCents,
		GrossCents:     d.GrossCents,
		TaxRatePercent: d.TaxRatePercent,
		IssueDate:      d.IssueDate.Format(DateLayout),
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt,
	}
}

// ToListSalesDocumentsResponse converts a page of domain SalesDocuments to a list response.
func ToListSalesDocumentsResponse(ds []domain.SalesDocument, nextToken *string) ListSalesDocumentsResponse {
	out := ListSalesDocumentsResponse{Documents: make([]SalesDocumentResponse, len(ds)), NextToken: nextToken}
	for i, d := range ds {
		out.Documents[i] = ToSalesDocumentResponse(d)
	}
	return out
}
