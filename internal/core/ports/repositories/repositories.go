package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	NumberingRepo   NumberingRepository
	InvoiceRepo     InvoiceRepositoryFacade
	ReceiptRepo     ReceiptRepositoryFacade
	SalesDocRepo    SalesDocumentRepositoryFacade
	LedgerRepo      LedgerRepositoryFacade
	TaxCategoryRepo TaxCategoryRepository
	SettingsRepo    SettingsRepository
	ReportingRepo   ReportingRepository
}
