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

// propertyHandler handles HTTP requests related to rural properties.
type propertyHandler struct {
	propertyService portssvc.PropertySvcFacade
}

// newPropertyHandler creates a new propertyHandler.
func newPropertyHandler(ps portssvc.PropertySvcFacade) *propertyHandler {
	return &propertyHandler{
		propertyService: ps,
	}
}

// registerPropertyRoutes registers routes related to rural properties.
func registerPropertyRoutes(rg *gin.RouterGroup, propertyService portssvc.PropertySvcFacade) {
	h := newPropertyHandler(propertyService)

	properties := rg.Group("/properties")
	{
		properties.POST("", h.createProperty)
		properties.GET("", h.listProperties)
		properties.GET("/:id", h.getProperty)
		properties.PUT("/:id", h.updateProperty)
		properties.DELETE("/:id", h.deleteProperty)
	}
}

// createProperty godoc
// @Summary Register a rural property
// @Description Registers a new rural property for the bookkeeping file
// @Tags properties
// @Accept  json
// @Produce  json
// @Param   property body dto.CreatePropertyRequest true "Property details"
// @Success 201 {object} dto.PropertyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Property code already registered"
// @Failure 500 {object} map[string]string "Failed to create property"
// @Router /properties [post]
func (h *propertyHandler) createProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProperty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create property", slog.String("code", req.Code))

	property, err := h.propertyService.CreateProperty(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating property", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate property code", slog.String("code", req.Code))
			c.JSON(http.StatusConflict, gin.H{"error": "Property code already registered"})
		} else {
			logger.Error("Failed to create property in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		}
		return
	}

	logger.Info("Property created successfully", slog.Int64("property_id", property.ID))
	c.JSON(http.StatusCreated, dto.ToPropertyResponse(property))
}

// listProperties godoc
// @Summary List rural properties
// @Description Lists registered properties ordered by name, optionally filtered by code or name substring
// @Tags properties
// @Produce  json
// @Param   search query string false "Substring match on code or name"
// @Success 200 {array} dto.PropertyResponse
// @Failure 500 {object} map[string]string "Failed to list properties"
// @Router /properties [get]
func (h *propertyHandler) listProperties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	search := c.Query("search")

	properties, err := h.propertyService.ListProperties(c.Request.Context(), search)
	if err != nil {
		logger.Error("Failed to list properties from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPropertyResponse(properties))
}

// getProperty godoc
// @Summary Get a rural property by ID
// @Description Retrieves details for a specific property
// @Tags properties
// @Produce  json
// @Param   id path int true "Property ID"
// @Success 200 {object} dto.PropertyResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 500 {object} map[string]string "Failed to retrieve property"
// @Router /properties/{id} [get]
func (h *propertyHandler) getProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	property, err := h.propertyService.GetPropertyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Property not found", slog.Int64("property_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else {
			logger.Error("Failed to get property from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve property"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// updateProperty godoc
// @Summary Update a rural property
// @Description Updates a property's details; country, currency and registration date are immutable
// @Tags properties
// @Accept  json
// @Produce  json
// @Param   id path int true "Property ID"
// @Param   property body dto.UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} dto.PropertyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 409 {object} map[string]string "Property code already registered"
// @Failure 500 {object} map[string]string "Failed to update property"
// @Router /properties/{id} [put]
func (h *propertyHandler) updateProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProperty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	property, err := h.propertyService.UpdateProperty(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Property not found for update", slog.Int64("property_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating property", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate property code on update", slog.Int64("property_id", id))
			c.JSON(http.StatusConflict, gin.H{"error": "Property code already registered"})
		} else {
			logger.Error("Failed to update property in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		}
		return
	}

	logger.Info("Property updated successfully", slog.Int64("property_id", id))
	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// deleteProperty godoc
// @Summary Delete a rural property
// @Description Removes a property; refused while ledger entries, production areas or stock items still reference it
// @Tags properties
// @Produce  json
// @Param   id path int true "Property ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 409 {object} map[string]string "Property is still referenced"
// @Failure 500 {object} map[string]string "Failed to delete property"
// @Router /properties/{id} [delete]
func (h *propertyHandler) deleteProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.propertyService.DeleteProperty(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Property not found for deletion", slog.Int64("property_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Property still referenced, deletion refused", slog.Int64("property_id", id))
			c.JSON(http.StatusConflict, gin.H{"error": "Property is still referenced by other records"})
		} else {
			logger.Error("Failed to delete property in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		}
		return
	}

	logger.Info("Property deleted successfully", slog.Int64("property_id", id))
	c.Status(http.StatusNoContent)
}
