package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klarbuch/klarbuch_app/internal/apperrors"
	portssvc "github.com/klarbuch/klarbuch_app/internal/core/ports/services"
	"github.com/klarbuch/klarbuch_app/internal/dto"
	"github.com/klarbuch/klarbuch_app/internal/middleware"
)

// receiptHandler handles HTTP requests related to point-of-sale receipts
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

// newReceiptHandler creates a new receiptHandler
func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{
		receiptService: rs,
	}
}

// registerReceiptRoutes registers routes related to receipts
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receiptGroup := rg.Group("/receipts")
	{
		receiptGroup.POST("", h.createReceipt)
		receiptGroup.GET("", h.listReceipts)
		receiptGroup.GET("/:receipt_id", h.getReceipt)
	}
}

// createReceipt godoc
// @Summary Record a receipt
// @Description Records a point-of-sale receipt with an allocated document number. Receipts are entered gross.
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body dto.CreateReceiptRequest true "Receipt details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record receipt"
// @Router /receipts [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create receipt request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	accountID := middleware.GetAccountScopeFromContext(c)
	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), accountID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to record receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record receipt"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToReceiptResponse(*receipt))
}

// listReceipts godoc
// @Summary List receipts
// @Description Retrieves a paginated list of receipts, newest first
// @Tags receipts
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 500 {object} map[string]string "Failed to list receipts"
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := middleware.GetAccountScopeFromContext(c)

	receipts, nextToken, err := h.receiptService.ListReceipts(c.Request.Context(), accountID, parseLimit(c), parseNextToken(c))
	if err != nil {
		logger.Error("Failed to list receipts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list receipts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListReceiptsResponse(receipts, nextToken))
}

// getReceipt godoc
// @Summary Get a receipt
// @Description Retrieves a single receipt by ID
// @Tags receipts
// @Produce json
// @Param receipt_id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} map[string]string "Receipt not found"
// @Failure 500 {object} map[string]string "Failed to get receipt"
// @Router /receipts/{receipt_id} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := middleware.GetAccountScopeFromContext(c)
	receiptID := c.Param("receipt_id")

	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), accountID, receiptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
			return
		}
		logger.Error("Failed to get receipt", slog.String("receipt_id", receiptID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get receipt"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(*receipt))
}
