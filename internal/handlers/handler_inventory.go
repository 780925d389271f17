package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/primeonhub/agrocontabil_app/internal/apperrors"
	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/dto"
	"github.com/primeonhub/agrocontabil_app/internal/middleware"
)

// inventoryHandler handles HTTP requests related to stock items.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// newInventoryHandler creates a new inventoryHandler.
func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{
		inventoryService: is,
	}
}

// registerInventoryRoutes registers routes related to stock items.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	items := rg.Group("/inventory")
	{
		items.POST("", h.createInventoryItem)
		items.GET("", h.listInventoryItems)
		items.GET("/:id", h.getInventoryItem)
		items.PUT("/:id", h.updateInventoryItem)
		items.DELETE("/:id", h.deleteInventoryItem)
	}
}

// createInventoryItem godoc
// @Summary Register a stock item
// @Description Registers a stock item; the expiry status is derived, never stored
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateInventoryItemRequest true "Stock item details"
// @Success 201 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create stock item"
// @Router /inventory [post]
func (h *inventoryHandler) createInventoryItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInventoryItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.CreateInventoryItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating inventory item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create inventory item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stock item"})
		}
		return
	}

	logger.Info("Inventory item created successfully", slog.Int64("item_id", item.ID))
	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(item, time.Now()))
}

// listInventoryItems godoc
// @Summary List stock items
// @Description Lists stock items ordered by expiry date, soonest first
// @Tags inventory
// @Produce  json
// @Success 200 {array} dto.InventoryItemResponse
// @Failure 500 {object} map[string]string "Failed to list stock items"
// @Router /inventory [get]
func (h *inventoryHandler) listInventoryItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.inventoryService.ListInventoryItems(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list inventory items from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInventoryItemResponse(items, time.Now()))
}

// getInventoryItem godoc
// @Summary Get a stock item by ID
// @Description Retrieves details for a specific stock item
// @Tags inventory
// @Produce  json
// @Param   id path int true "Stock item ID"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Stock item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve stock item"
// @Router /inventory/{id} [get]
func (h *inventoryHandler) getInventoryItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.GetInventoryItemByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Inventory item not found", slog.Int64("item_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		} else {
			logger.Error("Failed to get inventory item from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stock item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item, time.Now()))
}

// updateInventoryItem godoc
// @Summary Update a stock item
// @Description Updates a stock item's details; the entry date is immutable
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path int true "Stock item ID"
// @Param   item body dto.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Stock item not found"
// @Failure 500 {object} map[string]string "Failed to update stock item"
// @Router /inventory/{id} [put]
func (h *inventoryHandler) updateInventoryItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInventoryItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.UpdateInventoryItem(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Inventory item not found for update", slog.Int64("item_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating inventory item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update inventory item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock item"})
		}
		return
	}

	logger.Info("Inventory item updated successfully", slog.Int64("item_id", id))
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item, time.Now()))
}

// deleteInventoryItem godoc
// @Summary Delete a stock item
// @Description Removes a stock item
// @Tags inventory
// @Produce  json
// @Param   id path int true "Stock item ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Stock item not found"
// @Failure 500 {object} map[string]string "Failed to delete stock item"
// @Router /inventory/{id} [delete]
func (h *inventoryHandler) deleteInventoryItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.inventoryService.DeleteInventoryItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Inventory item not found for deletion", slog.Int64("item_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		} else {
			logger.Error("Failed to delete inventory item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stock item"})
		}
		return
	}

	logger.Info("Inventory item deleted successfully", slog.Int64("item_id", id))
	c.Status(http.StatusNoContent)
}
