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
)

// receiptService implements the ReceiptSvcFacade interface
type receiptService struct {
	BaseService
	receiptRepo portsrepo.ReceiptRepositoryFacade
	numbering   portssvc.NumberingService
	format      domain.NumberFormat
}

// NewReceiptService creates a new receipt service
func NewReceiptService(repo portsrepo.ReceiptRepositoryFacade, numbering portssvc.NumberingService, format domain.NumberFormat) portssvc.ReceiptSvcFacade {
	return &receiptService{
		receiptRepo: repo,
		numbering:   numbering,
		format:      format,
	}
}

// Ensure receiptService implements the ReceiptSvcFacade interface
var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// CreateReceipt records a point-of-sale receipt. Receipts are entered gross;
// the net and tax legs are derived from the rate. Number allocation happens
// before the save: when it fails, no receipt is written.
func (s *receiptService) CreateReceipt(ctx context.Context, accountID *string, req dto.CreateReceiptRequest) (*domain.Receipt, error) {
	bookedOn, err := dto.ParseDate(req.BookedOn)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking date: %s", apperrors.ErrValidation, req.BookedOn)
	}

	amount, err := money.Split(req.GrossCents, req.TaxRatePercent)
	if err != nil {
		return nil, err
	}

	_, number, err := s.numbering.NextNumber(ctx, domain.NumberKeyReceipt, s.format.Template, s.format.Mode, bookedOn)
	if err != nil {
		s.LogError(ctx, err, "Receipt creation aborted, number allocation failed")
		return nil, err
	}

	now := time.Now()
	actor := auditActor(accountID)
	receipt := domain.Receipt{
		ReceiptID:      uuid.NewString(),
		AccountID:      accountID,
		Number:         number,
		Description:    req.Description,
		NetCents:       amount.NetCents,
		TaxCents:       amount.TaxCents,
		GrossCents:     amount.GrossCents,
		TaxRatePercent: req.TaxRatePercent,
		BookedOn:       bookedOn,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.receiptRepo.SaveReceipt(ctx, receipt); err != nil {
		s.LogError(ctx, err, "Failed to save receipt", slog.String("number", number))
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	s.LogInfo(ctx, "Receipt recorded",
		slog.String("receipt_id", receipt.ReceiptID),
		slog.String("number", number),
		slog.Int64("gross_cents", receipt.GrossCents))
	return &receipt, nil
}

// GetReceiptByID retrieves a single receipt within the account scope.
func (s *receiptService) GetReceiptByID(ctx context.Context, accountID *string, receiptID string) (*domain.Receipt, error) {
	return s.receiptRepo.FindReceiptByID(ctx, accountID, receiptID)
}

// ListReceipts retrieves a page of receipts, newest first.
func (s *receiptService) ListReceipts(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.Receipt, *string, error) {
	receipts, token, err := s.receiptRepo.ListReceipts(ctx, accountID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipts")
		return nil, nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	if receipts == nil {
		receipts = []domain.Receipt{}
	}
	return receipts, token, nil
}
