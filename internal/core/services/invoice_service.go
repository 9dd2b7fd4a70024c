package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/klarbuch/klarbuch_app/internal/apperrors"
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portsrepo "github.com/klarbuch/klarbuch_app/internal/core/ports/repositories"
	portssvc "github.com/klarbuch/klarbuch_app/internal/core/ports/services"
	"github.com/klarbuch/klarbuch_app/internal/dto"
	"github.com/klarbuch/klarbuch_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// auditActor resolves the audit identity for writes under an account scope.
func auditActor(accountID *string) string {
	if accountID != nil {
		return *accountID
	}
	return "system"
}

// splitAmounts derives the full net/tax/gross triple from whichever leg the
// request supplied. Exactly one of gross and net must be set.
func splitAmounts(grossCents, netCents *int64, rate *decimal.Decimal) (money.Amount, error) {
	switch {
	case grossCents != nil && netCents != nil:
		return money.Amount{}, fmt.Errorf("%w: supply either grossCents or netCents, not both", apperrors.ErrValidation)
	case grossCents != nil:
		return money.Split(*grossCents, rate)
	case netCents != nil:
		return money.Combine(*netCents, rate)
	default:
		return money.Amount{}, fmt.Errorf("%w: one of grossCents or netCents is required", apperrors.ErrValidation)
	}
}

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	numbering   portssvc.NumberingService
	format      domain.NumberFormat
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, numbering portssvc.NumberingService, format domain.NumberFormat) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: repo,
		numbering:   numbering,
		format:      format,
	}
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice validates the request, allocates a display number and persists
// the invoice. Number allocation happens before the save: when it fails, no
// invoice is written.
func (s *invoiceService) CreateInvoice(ctx context.Context, accountID *string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	issueDate, err := dto.ParseDate(req.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid issue date: %s", apperrors.ErrValidation, req.IssueDate)
	}

	amount, err := splitAmounts(req.GrossCents, req.NetCents, req.TaxRatePercent)
	if err != nil {
		return nil, err
	}

	_, number, err := s.numbering.NextNumber(ctx, domain.NumberKeyInvoice, s.format.Template, s.format.Mode, issueDate)
	if err != nil {
		s.LogError(ctx, err, "Invoice creation aborted, number allocation failed")
		return nil, err
	}

	now := time.Now()
	actor := auditActor(accountID)
	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		AccountID:      accountID,
		Number:         number,
		CustomerName:   req.CustomerName,
		NetCents:       amount.NetCents,
		TaxCents:       amount.TaxCents,
		GrossCents:     amount.GrossCents,
		TaxRatePercent: req.TaxRatePercent,
		IssueDate:      issueDate,
		Status:         domain.InvoiceOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("number", number))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("number", number),
		slog.Int64("gross_cents", invoice.GrossCents))
	return &invoice, nil
}

// GetInvoiceByID retrieves a single invoice within the account scope.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, accountID *string, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, accountID, invoiceID)
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// ListInvoices retrieves a page of invoices, newest first.
func (s *invoiceService) ListInvoices(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	invoices, token, err := s.invoiceRepo.ListInvoices(ctx, accountID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, token, nil
}

// MarkInvoicePaid records the payment timestamp. Cancelled invoices cannot be
// paid; the repository refuses the transition and reports not found.
func (s *invoiceService) MarkInvoicePaid(ctx context.Context, accountID *string, invoiceID string, paidAt time.Time) (*domain.Invoice, error) {
	now := time.Now()
	if err := s.invoiceRepo.MarkInvoicePaid(ctx, accountID, invoiceID, paidAt, auditActor(accountID), now); err != nil {
		s.LogError(ctx, err, "Failed to mark invoice paid", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, accountID, invoiceID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Invoice marked paid",
		slog.String("invoice_id", invoiceID),
		slog.Time("paid_at", paidAt))
	return invoice, nil
}

// CancelInvoice flips the invoice to CANCELLED. Cancelled invoices never count
// as income regardless of a previously recorded payment.
func (s *invoiceService) CancelInvoice(ctx context.Context, accountID *string, invoiceID string) error {
	now := time.Now()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, accountID, invoiceID, domain.InvoiceCancelled, auditActor(accountID), now); err != nil {
		s.LogError(ctx, err, "Failed to cancel invoice", slog.String("invoice_id", invoiceID))
		return err
	}
	s.LogInfo(ctx, "Invoice cancelled", slog.String("invoice_id", invoiceID))
	return nil
}
