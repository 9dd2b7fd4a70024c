package mapping

import (
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	"github.com/klarbuch/klarbuch_app/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:        d.EntryID,
		AccountID:      d.AccountID,
		Kind:           string(d.Kind),
		Description:    d.Description,
		CategoryCode:   d.CategoryCode,
		NetCents:       d.NetCents,
		VATCents:       d.VATCents,
		GrossCents:     d.GrossCents,
		VATRatePercent: d.VATRatePercent,
		BookedOn:       d.BookedOn,
		InvoiceID:      d.InvoiceID,
		ReceiptID:      d.ReceiptID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:        m.EntryID,
		AccountID:      m.AccountID,
		Kind:           domain.EntryKind(m.Kind),
		Description:    m.Description,
		CategoryCode:   m.CategoryCode,
		NetCents:       m.NetCents,
		VATCents:       m.VATCents,
		GrossCents:     m.GrossCents,
		VATRatePercent: m.VATRatePercent,
		BookedOn:       m.BookedOn,
		InvoiceID:      m.InvoiceID,
		ReceiptID:      m.ReceiptID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

// ToDomainTaxCategory converts a model TaxCategory to a domain TaxCategory
func ToDomainTaxCategory(m models.TaxCategory) domain.TaxCategory {
	return domain.TaxCategory{
		Code:                  m.Code,
		Name:                  m.Name,
		ChartCode:             m.ChartCode,
		DefaultVATRatePercent: m.DefaultVATRatePercent,
	}
}

// ToDomainTaxCategorySlice converts a slice of model TaxCategories to domain TaxCategories
func ToDomainTaxCategorySlice(ms []models.TaxCategory) []domain.TaxCategory {
	ds := make([]domain.TaxCategory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTaxCategory(m)
	}
	return ds
}

// ToDomainNumberingCounter converts a model NumberingCounter to a domain NumberingCounter
func ToDomainNumberingCounter(m models.NumberingCounter) domain.NumberingCounter {
	return domain.NumberingCounter{
		Key:         m.CounterKey,
		Next:        m.NextValue,
		Period:      domain.PeriodMode(m.Period),
		PeriodValue: m.PeriodValue,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
