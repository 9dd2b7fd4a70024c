package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories against one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		NumberingRepo:   newPgxNumberingRepository(pool),
		InvoiceRepo:     newPgxInvoiceRepository(pool),
		ReceiptRepo:     newPgxReceiptRepository(pool),
		SalesDocRepo:    newPgxSalesDocumentRepository(pool),
		LedgerRepo:      newPgxLedgerRepository(pool),
		TaxCategoryRepo: newTaxCategoryRepository(pool),
		SettingsRepo:    newSettingsRepository(pool),
		ReportingRepo:   newReportingRepository(pool),
	}
}
