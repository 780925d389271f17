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

// cropHandler handles HTTP requests related to the crop lookup table.
type cropHandler struct {
	cropService portssvc.CropSvcFacade
}

// newCropHandler creates a new cropHandler.
func newCropHandler(cs portssvc.CropSvcFacade) *cropHandler {
	return &cropHandler{
		cropService: cs,
	}
}

// registerCropRoutes registers routes related to crops.
func registerCropRoutes(rg *gin.RouterGroup, cropService portssvc.CropSvcFacade) {
	h := newCropHandler(cropService)

	crops := rg.Group("/crops")
	{
		crops.POST("", h.createCrop)
		crops.GET("", h.listCrops)
		crops.GET("/:id", h.getCrop)
		crops.PUT("/:id", h.updateCrop)
		crops.DELETE("/:id", h.deleteCrop)
	}
}

// createCrop godoc
// @Summary Register a crop
// @Description Registers a crop in the lookup table used by production planning
// @Tags crops
// @Accept  json
// @Produce  json
// @Param   crop body dto.CreateCropRequest true "Crop details"
// @Success 201 {object} dto.CropResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create crop"
// @Router /crops [post]
func (h *cropHandler) createCrop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCrop", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	crop, err := h.cropService.CreateCrop(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating crop", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create crop in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create crop"})
		}
		return
	}

	logger.Info("Crop created successfully", slog.Int64("crop_id", crop.ID))
	c.JSON(http.StatusCreated, dto.ToCropResponse(crop))
}

// listCrops godoc
// @Summary List crops
// @Description Lists registered crops ordered by name
// @Tags crops
// @Produce  json
// @Success 200 {array} dto.CropResponse
// @Failure 500 {object} map[string]string "Failed to list crops"
// @Router /crops [get]
func (h *cropHandler) listCrops(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	crops, err := h.cropService.ListCrops(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list crops from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list crops"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCropResponse(crops))
}

// getCrop godoc
// @Summary Get a crop by ID
// @Description Retrieves details for a specific crop
// @Tags crops
// @Produce  json
// @Param   id path int true "Crop ID"
// @Success 200 {object} dto.CropResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Crop not found"
// @Failure 500 {object} map[string]string "Failed to retrieve crop"
// @Router /crops/{id} [get]
func (h *cropHandler) getCrop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	crop, err := h.cropService.GetCropByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Crop not found", slog.Int64("crop_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Crop not found"})
		} else {
			logger.Error("Failed to get crop from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve crop"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCropResponse(crop))
}

// updateCrop godoc
// @Summary Update a crop
// @Description Updates a crop's details
// @Tags crops
// @Accept  json
// @Produce  json
// @Param   id path int true "Crop ID"
// @Param   crop body dto.UpdateCropRequest true "Fields to update"
// @Success 200 {object} dto.CropResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Crop not found"
// @Failure 500 {object} map[string]string "Failed to update crop"
// @Router /crops/{id} [put]
func (h *cropHandler) updateCrop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCrop", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	crop, err := h.cropService.UpdateCrop(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Crop not found for update", slog.Int64("crop_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Crop not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating crop", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update crop in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update crop"})
		}
		return
	}

	logger.Info("Crop updated successfully", slog.Int64("crop_id", id))
	c.JSON(http.StatusOK, dto.ToCropResponse(crop))
}

// deleteCrop godoc
// @Summary Delete a crop
// @Description Removes a crop; refused while production areas still reference it
// @Tags crops
// @Produce  json
// @Param   id path int true "Crop ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Crop not found"
// @Failure 409 {object} map[string]string "Crop is still referenced"
// @Failure 500 {object} map[string]string "Failed to delete crop"
// @Router /crops/{id} [delete]
func (h *cropHandler) deleteCrop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.cropService.DeleteCrop(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Crop not found for deletion", slog.Int64("crop_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Crop not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Crop still referenced, deletion refused", slog.Int64("crop_id", id))
			c.JSON(http.StatusConflict, gin.H{"error": "Crop is still referenced by production areas"})
		} else {
			logger.Error("Failed to delete crop in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete crop"})
		}
		return
	}

	logger.Info("Crop deleted successfully", slog.Int64("crop_id", id))
	c.Status(http.StatusNoContent)
}
