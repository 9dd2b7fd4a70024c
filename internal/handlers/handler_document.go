package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klarbuch/klarbuch_app/internal/apperrors"
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	portssvc "github.com/klarbuch/klarbuch_app/internal/core/ports/services"
	"github.com/klarbuch/klarbuch_app/internal/dto"
	"github.com/klarbuch/klarbuch_app/internal/middleware"
)

// salesDocumentHandler handles HTTP requests for orders and quotes. Both
// document types share the handler; the route group fixes the type.
type salesDocumentHandler struct {
	docService portssvc.SalesDocumentSvcFacade
	docType    domain.SalesDocType
}

// registerSalesDocumentRoutes registers the order and quote route groups
func registerSalesDocumentRoutes(rg *gin.RouterGroup, docService portssvc.SalesDocumentSvcFacade) {
	orders := &salesDocumentHandler{docService: docService, docType: domain.DocTypeOrder}
	quotes := &salesDocumentHandler{docService: docService, docType: domain.DocTypeQuote}

	orderGroup := rg.Group("/orders")
	{
		orderGroup.POST("", orders.createDocument)
		orderGroup.GET("", orders.listDocuments)
		orderGroup.GET("/:document_id", orders.getDocument)
		orderGroup.PATCH("/:document_id/status", orders.updateStatus)
	}

	quoteGroup := rg.Group("/quotes")
	{
		quoteGroup.POST("", quotes.createDocument)
		quoteGroup.GET("", quotes.listDocuments)
		quoteGroup.GET("/:document_id", quotes.getDocument)
		quoteGroup.PATCH("/:document_id/status", quotes.updateStatus)
	}
}

// createDocument godoc
// @Summary Create an order or quote
// @Description Creates a sales document with an allocated document number. Exactly one of grossCents and netCents must be supplied.
// @Tags documents
// @Accept json
// @Produce json
// @Param document body dto.CreateSalesDocumentRequest true "Document details"
// @Success 201 {object} dto.SalesDocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create document"
// @Router /orders [post]
func (h *salesDocumentHandler) createDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSalesDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create document request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	accountID := middleware.GetAccountScopeFromContext(c)
	doc, err := h.docService.CreateSalesDocument(c.Request.Context(), accountID, h.docType, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create document", slog.String("doc_type", string(h.docType)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSalesDocumentResponse(*doc))
}

// listDocuments godoc
// @Summary List orders or quotes
// @Description Retrieves a paginated list of one document type, newest first
// @Tags documents
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListSalesDocumentsResponse
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Router /orders [get]
func (h *salesDocumentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := middleware.GetAccountScopeFromContext(c)

	docs, nextToken, err := h.docService.ListSalesDocuments(c.Request.Context(), accountID, h.docType, parseLimit(c), parseNextToken(c))
	if err != nil {
		logger.Error("Failed to list documents", slog.String("doc_type", string(h.docType)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalesDocumentsResponse(docs, nextToken))
}

// getDocument godoc
// @Summary Get an order or quote
// @Description Retrieves a single sales document by ID
// @Tags documents
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 200 {object} dto.SalesDocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to get document"
// @Router /orders/{document_id} [get]
func (h *salesDocumentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := middleware.GetAccountScopeFromContext(c)
	documentID := c.Param("document_id")

	doc, err := h.docService.GetSalesDocumentByID(c.Request.Context(), accountID, documentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		logger.Error("Failed to get document", slog.String("document_id", documentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get document"})
		return
	}
	if doc.DocType != h.docType {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesDocumentResponse(*doc))
}

// updateStatus godoc
// @Summary Update an order or quote status
// @Description Transitions a sales document to a new lifecycle state
// @Tags documents
// @Accept json
// @Produce json
// @Param document_id path string true "Document ID"
// @Param status body dto.UpdateSalesDocStatusRequest true "New status"
// @Success 200 {object} dto.SalesDocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Router /orders/{document_id}/status [patch]
func (h *salesDocumentHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := middleware.GetAccountScopeFromContext(c)
	documentID := c.Param("document_id")

	var req dto.UpdateSalesDocStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	doc, err := h.docService.UpdateSalesDocumentStatus(c.Request.Context(), accountID, documentID, domain.SalesDocStatus(req.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		logger.Error("Failed to update document status", slog.String("document_id", documentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesDocumentResponse(*doc))
}
