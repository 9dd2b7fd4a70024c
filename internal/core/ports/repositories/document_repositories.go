package repositories

import (
	"context"
	"time"

	"github.com/klarbuch/klarbuch_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, accountID *string, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices using token-based pagination.
	ListInvoices(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.Invoice, *string, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// MarkInvoicePaid records the payment timestamp and flips the status to PAID.
	MarkInvoicePaid(ctx context.Context, accountID *string, invoiceID string, paidAt time.Time, updatedBy string, updatedAt time.Time) error

	// UpdateInvoiceStatus updates the invoice status (e.g. cancellation).
	UpdateInvoiceStatus(ctx context.Context, accountID *string, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// ReceiptReader defines read operations for receipt data
type ReceiptReader interface {
	FindReceiptByID(ctx context.Context, accountID *string, receiptID string) (*domain.Receipt, error)
	ListReceipts(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.Receipt, *string, error)
}

// ReceiptWriter defines write operations for receipt data
type ReceiptWriter interface {
	SaveReceipt(ctx context.Context, receipt domain.Receipt) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}

// SalesDocumentReader defines read operations for orders and quotes
type SalesDocumentReader interface {
	FindSalesDocumentByID(ctx context.Context, accountID *string, documentID string) (*domain.SalesDocument, error)
	ListSalesDocuments(ctx context.Context, accountID *string, docType domain.SalesDocType, limit int, nextToken *string) ([]domain.SalesDocument, *string, error)
}

// SalesDocumentWriter defines write operations for orders and quotes
type SalesDocumentWriter interface {
	SaveSalesDocument(ctx context.Context, doc domain.SalesDocument) error
	UpdateSalesDocumentStatus(ctx context.Context, accountID *string, documentID string, status domain.SalesDocStatus, updatedBy string, updatedAt time.Time) error
}

// SalesDocumentRepositoryFacade combines all order/quote repository interfaces
type SalesDocumentRepositoryFacade interface {
	SalesDocumentReader
	SalesDocumentWriter
}
