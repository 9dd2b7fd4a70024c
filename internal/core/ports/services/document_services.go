package services

import (
	"context"
	"time"

	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	"github.com/klarbuch/klarbuch_app/internal/dto"
)

// InvoiceSvcFacade defines the operations for managing invoices.
// Creation allocates a display number through the numbering service and
// computes the net/tax/gross split; an allocation failure aborts creation.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, accountID *string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, accountID *string, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.Invoice, *string, error)
	MarkInvoicePaid(ctx context.Context, accountID *string, invoiceID string, paidAt time.Time) (*domain.Invoice, error)
	CancelInvoice(ctx context.Context, accountID *string, invoiceID string) error
}

// ReceiptSvcFacade defines the operations for managing point-of-sale receipts.
type ReceiptSvcFacade interface {
	CreateReceipt(ctx context.Context, accountID *string, req dto.CreateReceiptRequest) (*domain.Receipt, error)
	GetReceiptByID(ctx context.Context, accountID *string, receiptID string) (*domain.Receipt, error)
	ListReceipts(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.Receipt, *string, error)
}

// SalesDocumentSvcFacade defines the operations for orders and quotes.
type SalesDocumentSvcFacade interface {
	CreateSalesDocument(ctx context.Context, accountID *string, docType domain.SalesDocType, req dto.CreateSalesDocumentRequest) (*domain.SalesDocument, error)
	GetSalesDocumentByID(ctx context.Context, accountID *string, documentID string) (*domain.SalesDocument, error)
	ListSalesDocuments(ctx context.Context, accountID *string, docType domain.SalesDocType, limit int, nextToken *string) ([]domain.SalesDocument, *string, error)
	UpdateSalesDocumentStatus(ctx context.Context, accountID *string, documentID string, status domain.SalesDocStatus) (*domain.SalesDocument, error)
}
