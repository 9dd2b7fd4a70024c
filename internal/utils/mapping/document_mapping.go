package mapping

import (
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	"github.com/klarbuch/klarbuch_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		AccountID:      d.AccountID,
		Number:         d.Number,
		CustomerName:   d.CustomerName,
		NetCents:       d.NetCents,
		TaxCents:       d.TaxCents,
		GrossCents:     d.GrossCents,
		TaxRatePercent: d.TaxRatePercent,
		IssueDate:      d.IssueDate,
		PaidAt:         d.PaidAt,
		Status:         models.InvoiceStatus(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		AccountID:      m.AccountID,
		Number:         m.Number,
		CustomerName:   m.CustomerName,
		NetCents:       m.NetCents,
		TaxCents:       m.TaxCents,
		GrossCents:     m.GrossCents,
		TaxRatePercent: m.TaxRatePercent,
		IssueDate:      m.IssueDate,
		PaidAt:         m.PaidAt,
		Status:         domain.InvoiceStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:      d.ReceiptID,
		AccountID:      d.AccountID,
		Number:         d.Number,
		Description:    d.Description,
		NetCents:       d.NetCents,
		TaxCents:       d.TaxCents,
		GrossCents:     d.GrossCents,
		TaxRatePercent: d.TaxRatePercent,
		BookedOn:       d.BookedOn,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:      m.ReceiptID,
		AccountID:      m.AccountID,
		Number:         m.Number,
		Description:    m.Description,
		NetCents:       m.NetCents,
		TaxCents:       m.TaxCents,
		GrossCents:     m.GrossCents,
		TaxRatePercent: m.TaxRatePercent,
		BookedOn:       m.BookedOn,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReceiptSlice converts a slice of model Receipts to domain Receipts
func ToDomainReceiptSlice(ms []models.Receipt) []domain.Receipt {
	ds := make([]domain.Receipt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReceipt(m)
	}
	return ds
}

// ToModelSalesDocument converts a domain SalesDocument to a model SalesDocument
func ToModelSalesDocument(d domain.SalesDocument) models.SalesDocument {
	return models.SalesDocument{
		DocumentID:     d.DocumentID,
		AccountID:      d.AccountID,
		DocType:        string(d.DocType),
		Number:         d.Number,
		CustomerName:   d.CustomerName,
		NetCents:       d.NetCents,
		TaxCents:       d.TaxCents,
		GrossCents:     d.GrossCents,
		TaxRatePercent: d.TaxRatePercent,
		IssueDate:      d.IssueDate,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalesDocument converts a model SalesDocument to a domain SalesDocument
func ToDomainSalesDocument(m models.SalesDocument) domain.SalesDocument {
	return domain.SalesDocument{
		DocumentID:     m.DocumentID,
		AccountID:      m.AccountID,
		DocType:        domain.SalesDocType(m.DocType),
		Number:         m.Number,
		CustomerName:   m.CustomerName,
		NetCents:       m.NetCents,
		TaxCents:       m.TaxCents,
		GrossCents:     m.GrossCents,
		TaxRatePercent: m.TaxRatePercent,
		IssueDate:      m.IssueDate,
		Status:         domain.SalesDocStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSalesDocumentSlice converts a slice of model SalesDocuments to domain SalesDocuments
func ToDomainSalesDocumentSlice(ms []models.SalesDocument) []domain.SalesDocument {
	ds := make([]domain.SalesDocument, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalesDocument(m)
	}
	return ds
}
