package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
	"github.com/primeonhub/agrocontabil_app/internal/middleware"
)

// ledgerHandler handles HTTP requests related to bookkeeping entries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes related to ledger entries.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Create a bookkeeping entry
// @Description Appends an entry to its account's running-balance chain. The stored balance and its nature are derived server-side; client-supplied values are ignored.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Router /entries [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create ledger entry",
		slog.Int64("account_id", req.AccountID),
		slog.Int64("property_id", req.PropertyID),
	)

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create ledger entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		}
		return
	}

	logger.Info("Ledger entry created successfully",
		slog.Int64("entry_id", entry.ID),
		slog.String("final_balance", entry.FinalBalance.String()),
		slog.String("nature", string(entry.Nature)),
	)
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// listEntries godoc
// @Summary List bookkeeping entries
// @Description Lists entries with display names resolved, newest entry date first, optionally filtered by date window, account and property
// @Tags entries
// @Produce  json
// @Param   from query string false "Start date, inclusive (YYYY-MM-DD)"
// @Param   to query string false "End date, inclusive (YYYY-MM-DD)"
// @Param   accountID query int false "Filter by bank account"
// @Param   propertyID query int false "Filter by property"
// @Success 200 {array} dto.LedgerEntryRowResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListLedgerEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.ledgerService.ListEntries(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing ledger entries", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list ledger entries from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListLedgerEntryRowResponse(rows))
}

// getEntry godoc
// @Summary Get a bookkeeping entry by ID
// @Description Retrieves a single entry with its stored balance snapshot
// @Tags entries
// @Produce  json
// @Param   id path int true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Router /entries/{id} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Ledger entry not found", slog.Int64("entry_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to get ledger entry from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a bookkeeping entry
// @Description Rewrites an entry. The balance snapshot is recomputed from the entry's own amounts; other entries in the chain are never touched.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   id path int true "Entry ID"
// @Param   entry body dto.UpdateLedgerEntryRequest true "Fields to update"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Router /entries/{id} [put]
func (h *ledgerHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.UpdateEntry(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Ledger entry not found for update", slog.Int64("entry_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update ledger entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		}
		return
	}

	logger.Info("Ledger entry updated successfully", slog.Int64("entry_id", id))
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a bookkeeping entry
// @Description Removes an entry. Later entries keep their stored balance snapshots; the chain is not repaired.
// @Tags entries
// @Produce  json
// @Param   id path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Router /entries/{id} [delete]
func (h *ledgerHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.ledgerService.DeleteEntry(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Ledger entry not found for deletion", slog.Int64("entry_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to delete ledger entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		}
		return
	}

	logger.Info("Ledger entry deleted successfully", slog.Int64("entry_id", id))
	c.Status(http.StatusNoContent)
}
