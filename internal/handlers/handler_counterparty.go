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

// counterpartyHandler handles HTTP requests related to participants.
type counterpartyHandler struct {
	counterpartyService portssvc.CounterpartySvcFacade
}

// newCounterpartyHandler creates a new counterpartyHandler.
func newCounterpartyHandler(cs portssvc.CounterpartySvcFacade) *counterpartyHandler {
	return &counterpartyHandler{
		counterpartyService: cs,
	}
}

// registerCounterpartyRoutes registers routes related to participants.
func registerCounterpartyRoutes(rg *gin.RouterGroup, counterpartyService portssvc.CounterpartySvcFacade) {
	h := newCounterpartyHandler(counterpartyService)

	counterparties := rg.Group("/counterparties")
	{
		counterparties.POST("", h.createCounterparty)
		counterparties.GET("", h.listCounterparties)
		counterparties.GET("/:id", h.getCounterparty)
		counterparties.PUT("/:id", h.updateCounterparty)
		counterparties.DELETE("/:id", h.deleteCounterparty)
	}
}

// createCounterparty godoc
// @Summary Register a participant
// @Description Registers a participant; the CPF/CNPJ may arrive punctuated and is stored as raw digits
// @Tags counterparties
// @Accept  json
// @Produce  json
// @Param   counterparty body dto.CreateCounterpartyRequest true "Participant details"
// @Success 201 {object} dto.CounterpartyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "CPF/CNPJ already registered"
// @Failure 500 {object} map[string]string "Failed to create participant"
// @Router /counterparties [post]
func (h *counterpartyHandler) createCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCounterparty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create counterparty", slog.String("name", req.Name))

	counterparty, err := h.counterpartyService.CreateCounterparty(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating counterparty", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate counterparty tax ID")
			c.JSON(http.StatusConflict, gin.H{"error": "CPF/CNPJ already registered"})
		} else {
			logger.Error("Failed to create counterparty in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create participant"})
		}
		return
	}

	logger.Info("Counterparty created successfully", slog.Int64("counterparty_id", counterparty.ID))
	c.JSON(http.StatusCreated, dto.ToCounterpartyResponse(counterparty))
}

// listCounterparties godoc
// @Summary List participants
// @Description Lists registered participants, most recently registered first
// @Tags counterparties
// @Produce  json
// @Success 200 {array} dto.CounterpartyResponse
// @Failure 500 {object} map[string]string "Failed to list participants"
// @Router /counterparties [get]
func (h *counterpartyHandler) listCounterparties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	counterparties, err := h.counterpartyService.ListCounterparties(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list counterparties from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list participants"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCounterpartyResponse(counterparties))
}

// getCounterparty godoc
// @Summary Get a participant by ID
// @Description Retrieves details for a specific participant
// @Tags counterparties
// @Produce  json
// @Param   id path int true "Participant ID"
// @Success 200 {object} dto.CounterpartyResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Participant not found"
// @Failure 500 {object} map[string]string "Failed to retrieve participant"
// @Router /counterparties/{id} [get]
func (h *counterpartyHandler) getCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	counterparty, err := h.counterpartyService.GetCounterpartyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Counterparty not found", slog.Int64("counterparty_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		} else {
			logger.Error("Failed to get counterparty from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve participant"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(counterparty))
}

// updateCounterparty godoc
// @Summary Update a participant
// @Description Updates a participant's details; a new CPF/CNPJ is normalised before storage
// @Tags counterparties
// @Accept  json
// @Produce  json
// @Param   id path int true "Participant ID"
// @Param   counterparty body dto.UpdateCounterpartyRequest true "Fields to update"
// @Success 200 {object} dto.CounterpartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Participant not found"
// @Failure 409 {object} map[string]string "CPF/CNPJ already registered"
// @Failure 500 {object} map[string]string "Failed to update participant"
// @Router /counterparties/{id} [put]
func (h *counterpartyHandler) updateCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCounterparty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	counterparty, err := h.counterpartyService.UpdateCounterparty(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Counterparty not found for update", slog.Int64("counterparty_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating counterparty", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate counterparty tax ID on update", slog.Int64("counterparty_id", id))
			c.JSON(http.StatusConflict, gin.H{"error": "CPF/CNPJ already registered"})
		} else {
			logger.Error("Failed to update counterparty in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update participant"})
		}
		return
	}

	logger.Info("Counterparty updated successfully", slog.Int64("counterparty_id", id))
	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(counterparty))
}

// deleteCounterparty godoc
// @Summary Delete a participant
// @Description Removes a participant; refused while ledger entries still reference it
// @Tags counterparties
// @Produce  json
// @Param   id path int true "Participant ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Participant not found"
// @Failure 409 {object} map[string]string "Participant is still referenced"
// @Failure 500 {object} map[string]string "Failed to delete participant"
// @Router /counterparties/{id} [delete]
func (h *counterpartyHandler) deleteCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.counterpartyService.DeleteCounterparty(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Counterparty not found for deletion", slog.Int64("counterparty_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Counterparty still referenced, deletion refused", slog.Int64("counterparty_id", id))
			c.JSON(http.StatusConflict, gin.H{"error": "Participant is still referenced by ledger entries"})
		} else {
			logger.Error("Failed to delete counterparty in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete participant"})
		}
		return
	}

	logger.Info("Counterparty deleted successfully", slog.Int64("counterparty_id", id))
	c.Status(http.StatusNoContent)
}
