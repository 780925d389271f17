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

// productionAreaHandler handles HTTP requests related to production planning.
type productionAreaHandler struct {
	areaService portssvc.ProductionAreaSvcFacade
}

// newProductionAreaHandler creates a new productionAreaHandler.
func newProductionAreaHandler(as portssvc.ProductionAreaSvcFacade) *productionAreaHandler {
	return &productionAreaHandler{
		areaService: as,
	}
}

// registerProductionAreaRoutes registers routes related to production areas.
func registerProductionAreaRoutes(rg *gin.RouterGroup, areaService portssvc.ProductionAreaSvcFacade) {
	h := newProductionAreaHandler(areaService)

	areas := rg.Group("/production-areas")
	{
		areas.POST("", h.createProductionArea)
		areas.GET("", h.listProductionAreas)
		areas.GET("/planning", h.listPlanning)
		areas.GET("/:id", h.getProductionArea)
		areas.PUT("/:id", h.updateProductionArea)
		areas.DELETE("/:id", h.deleteProductionArea)
	}
}

// createProductionArea godoc
// @Summary Register a production area
// @Description Registers a planting-plan row binding a property to a crop
// @Tags production-areas
// @Accept  json
// @Produce  json
// @Param   area body dto.CreateProductionAreaRequest true "Production area details"
// @Success 201 {object} dto.ProductionAreaResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create production area"
// @Router /production-areas [post]
func (h *productionAreaHandler) createProductionArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductionAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProductionArea", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	area, err := h.areaService.CreateProductionArea(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating production area", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create production area in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create production area"})
		}
		return
	}

	logger.Info("Production area created successfully", slog.Int64("area_id", area.ID))
	c.JSON(http.StatusCreated, dto.ToProductionAreaResponse(area))
}

// listProductionAreas godoc
// @Summary List production areas
// @Description Lists planting-plan rows, most recently planted first
// @Tags production-areas
// @Produce  json
// @Success 200 {array} dto.ProductionAreaResponse
// @Failure 500 {object} map[string]string "Failed to list production areas"
// @Router /production-areas [get]
func (h *productionAreaHandler) listProductionAreas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	areas, err := h.areaService.ListProductionAreas(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list production areas from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list production areas"})
		return
	}

	res := make([]dto.ProductionAreaResponse, len(areas))
	for i := range areas {
		res[i] = dto.ToProductionAreaResponse(&areas[i])
	}
	c.JSON(http.StatusOK, res)
}

// listPlanning godoc
// @Summary List the planting plan
// @Description Lists production areas joined with their crop names, the shape the planning screen consumes
// @Tags production-areas
// @Produce  json
// @Success 200 {array} dto.PlanningRowResponse
// @Failure 500 {object} map[string]string "Failed to list planning rows"
// @Router /production-areas/planning [get]
func (h *productionAreaHandler) listPlanning(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.areaService.ListPlanning(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list planning rows from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list planning rows"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPlanningRowResponse(rows))
}

// getProductionArea godoc
// @Summary Get a production area by ID
// @Description Retrieves details for a specific planting-plan row
// @Tags production-areas
// @Produce  json
// @Param   id path int true "Production area ID"
// @Success 200 {object} dto.ProductionAreaResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Production area not found"
// @Failure 500 {object} map[string]string "Failed to retrieve production area"
// @Router /production-areas/{id} [get]
func (h *productionAreaHandler) getProductionArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	area, err := h.areaService.GetProductionAreaByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Production area not found", slog.Int64("area_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Production area not found"})
		} else {
			logger.Error("Failed to get production area from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve production area"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductionAreaResponse(area))
}

// updateProductionArea godoc
// @Summary Update a production area
// @Description Updates a planting-plan row; the owning property is immutable
// @Tags production-areas
// @Accept  json
// @Produce  json
// @Param   id path int true "Production area ID"
// @Param   area body dto.UpdateProductionAreaRequest true "Fields to update"
// @Success 200 {object} dto.ProductionAreaResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Production area not found"
// @Failure 500 {object} map[string]string "Failed to update production area"
// @Router /production-areas/{id} [put]
func (h *productionAreaHandler) updateProductionArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProductionAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProductionArea", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	area, err := h.areaService.UpdateProductionArea(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Production area not found for update", slog.Int64("area_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Production area not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating production area", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update production area in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update production area"})
		}
		return
	}

	logger.Info("Production area updated successfully", slog.Int64("area_id", id))
	c.JSON(http.StatusOK, dto.ToProductionAreaResponse(area))
}

// deleteProductionArea godoc
// @Summary Delete a production area
// @Description Removes a planting-plan row
// @Tags production-areas
// @Produce  json
// @Param   id path int true "Production area ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Production area not found"
// @Failure 500 {object} map[string]string "Failed to delete production area"
// @Router /production-areas/{id} [delete]
func (h *productionAreaHandler) deleteProductionArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.areaService.DeleteProductionArea(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Production area not found for deletion", slog.Int64("area_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Production area not found"})
		} else {
			logger.Error("Failed to delete production area in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete production area"})
		}
		return
	}

	logger.Info("Production area deleted successfully", slog.Int64("area_id", id))
	c.Status(http.StatusNoContent)
}
