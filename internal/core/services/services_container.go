package services

import (
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
	portssvc "github.com/klarbuch/klarbuch_app/internal/core/ports/services"
	"github.com/klarbuch/klarbuch_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Numbering first: every document service allocates through it.
	container.Numbering = NewNumberingService(repos.NumberingRepo)

	container.Invoice = NewInvoiceService(repos.InvoiceRepo, container.Numbering, cfg.InvoiceNumbers)
	container.Receipt = NewReceiptService(repos.ReceiptRepo, container.Numbering, cfg.ReceiptNumbers)
	container.SalesDocument = NewSalesDocumentService(repos.SalesDocRepo, container.Numbering, map[domain.SalesDocType]domain.NumberFormat{
		domain.DocTypeOrder: cfg.OrderNumbers,
		domain.DocTypeQuote: cfg.QuoteNumbers,
	})
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.TaxCategoryRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.SettingsRepo)

	return container
}
