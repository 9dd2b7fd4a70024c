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
)

// salesDocumentService implements the SalesDocumentSvcFacade interface.
// Orders and quotes share the implementation; the doc type selects the
// numbering sequence and template.
type salesDocumentService struct {
	BaseService
	docRepo   portsrepo.SalesDocumentRepositoryFacade
	numbering portssvc.NumberingService
	formats   map[domain.SalesDocType]domain.NumberFormat
}

// NewSalesDocumentService creates a new order/quote service
func NewSalesDocumentService(repo portsrepo.SalesDocumentRepositoryFacade, numbering portssvc.NumberingService, formats map[domain.SalesDocType]domain.NumberFormat) portssvc.SalesDocumentSvcFacade {
	return &salesDocumentService{
		docRepo:   repo,
		numbering: numbering,
		formats:   formats,
	}
}

// Ensure salesDocumentService implements the SalesDocumentSvcFacade interface
var _ portssvc.SalesDocumentSvcFacade = (*salesDocumentService)(nil)

func numberKeyFor(docType domain.SalesDocType) (string, error) {
	switch docType {
	case domain.DocTypeOrder:
		return domain.NumberKeyOrder, nil
	case domain.DocTypeQuote:
		return domain.NumberKeyQuote, nil
	}
	return "", fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, docType)
}

// CreateSalesDocument validates the request, allocates a display number from
// the doc type's own sequence and persists the document.
func (s *salesDocumentService) CreateSalesDocument(ctx context.Context, accountID *string, docType domain.SalesDocType, req dto.CreateSalesDocumentRequest) (*domain.SalesDocument, error) {
	key, err := numberKeyFor(docType)
	if err != nil {
		return nil, err
	}

	issueDate, err := dto.ParseDate(req.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid issue date: %s", apperrors.ErrValidation, req.IssueDate)
	}

	amount, err := splitAmounts(req.GrossCents, req.NetCents, req.TaxRatePercent)
	if err != nil {
		return nil, err
	}

	format := s.formats[docType]
	_, number, err := s.numbering.NextNumber(ctx, key, format.Template, format.Mode, issueDate)
	if err != nil {
		s.LogError(ctx, err, "Document creation aborted, number allocation failed",
			slog.String("doc_type", string(docType)))
		return nil, err
	}

	now := time.Now()
	actor := auditActor(accountID)
	doc := domain.SalesDocument{
		DocumentID:     uuid.NewString(),
		AccountID:      accountID,
		DocType:        docType,
		Number:         number,
		CustomerName:   req.CustomerName,
		NetCents:       amount.NetCents,
		TaxCents:       amount.TaxCents,
		GrossCents:     amount.GrossCents,
		TaxRatePercent: req.TaxRatePercent,
		IssueDate:      issueDate,
		Status:         domain.SalesDocOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.docRepo.SaveSalesDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save sales document", slog.String("number", number))
		return nil, fmt.Errorf("failed to save %s: %w", docType, err)
	}

	s.LogInfo(ctx, "Sales document created",
		slog.String("document_id", doc.DocumentID),
		slog.String("doc_type", string(docType)),
		slog.String("number", number))
	return &doc, nil
}

// GetSalesDocumentByID retrieves a single order or quote within the account scope.
func (s *salesDocumentService) GetSalesDocumentByID(ctx context.Context, accountID *string, documentID string) (*domain.SalesDocument, error) {
	return s.docRepo.FindSalesDocumentByID(ctx, accountID, documentID)
}

// ListSalesDocuments retrieves a page of documents of one type, newest first.
func (s *salesDocumentService) ListSalesDocuments(ctx context.Context, accountID *string, docType domain.SalesDocType, limit int, nextToken *string) ([]domain.SalesDocument, *string, error) {
	if _, err := numberKeyFor(docType); err != nil {
		return nil, nil, err
	}
	docs, token, err := s.docRepo.ListSalesDocuments(ctx, accountID, docType, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales documents", slog.String("doc_type", string(docType)))
		return nil, nil, fmt.Errorf("failed to list %s documents: %w", docType, err)
	}
	if docs == nil {
		docs = []domain.SalesDocument{}
	}
	return docs, token, nil
}

// UpdateSalesDocumentStatus transitions an order or quote to a new lifecycle state.
func (s *salesDocumentService) UpdateSalesDocumentStatus(ctx context.Context, accountID *string, documentID string, status domain.SalesDocStatus) (*domain.SalesDocument, error) {
	now := time.Now()
	if err := s.docRepo.UpdateSalesDocumentStatus(ctx, accountID, documentID, status, auditActor(accountID), now); err != nil {
		s.LogError(ctx, err, "Failed to update document status",
			slog.String("document_id", documentID),
			slog.String("status", string(status)))
		return nil, err
	}

	doc, err := s.docRepo.FindSalesDocumentByID(ctx, accountID, documentID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Sales document status updated",
		slog.String("document_id", documentID),
		slog.String("status", string(status)))
	return doc, nil
}
