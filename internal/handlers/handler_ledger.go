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

// ledgerHandler handles HTTP requests for manual ledger entries and the
// tax category lookup
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers ledger entry and tax category routes
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	entryGroup := rg.Group("/ledger/entries")
	{
		entryGroup.POST("", h.createEntry)
		entryGroup.GET("", h.listEntries)
		entryGroup.GET("/:entry_id", h.getEntry)
	}

	rg.GET("/tax-categories", h.listCategories)
}

// createEntry godoc
// @Summary Book a ledger entry
// @Description Books a manual income, expense or transfer entry. When a tax category is named without an explicit rate, the category's default VAT rate applies.
// @Tags ledger
// @Accept json
// @Produce json
// @Param entry body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown tax category"
// @Failure 500 {object} map[string]string "Failed to book entry"
// @Router /ledger/entries [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	accountID := middleware.GetAccountScopeFromContext(c)
	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), accountID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown tax category"})
			return
		}
		logger.Error("Failed to book ledger entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book entry"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(*entry))
}

// listEntries godoc
// @Summary List ledger entries
// @Description Retrieves a paginated list of ledger entries, newest first
// @Tags ledger
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /ledger/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := middleware.GetAccountScopeFromContext(c)

	entries, nextToken, err := h.ledgerService.ListEntries(c.Request.Context(), accountID, parseLimit(c), parseNextToken(c))
	if err != nil {
		logger.Error("Failed to list ledger entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLedgerEntriesResponse(entries, nextToken))
}

// getEntry godoc
// @Summary Get a ledger entry
// @Description Retrieves a single ledger entry by ID
// @Tags ledger
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to get entry"
// @Router /ledger/entries/{entry_id} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := middleware.GetAccountScopeFromContext(c)
	entryID := c.Param("entry_id")

	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), accountID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		logger.Error("Failed to get ledger entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(*entry))
}

// listCategories godoc
// @Summary List tax categories
// @Description Retrieves the static tax category lookup, ordered by code
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.TaxCategoryResponse
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Router /tax-categories [get]
func (h *ledgerHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.ledgerService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list tax categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxCategoryResponses(categories))
}
