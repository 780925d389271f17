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

// bankAccountHandler handles HTTP requests related to bank accounts.
type bankAccountHandler struct {
	accountService portssvc.BankAccountSvcFacade
}

// newBankAccountHandler creates a new bankAccountHandler.
func newBankAccountHandler(as portssvc.BankAccountSvcFacade) *bankAccountHandler {
	return &bankAccountHandler{
		accountService: as,
	}
}

// registerBankAccountRoutes registers routes related to bank accounts.
func registerBankAccountRoutes(rg *gin.RouterGroup, accountService portssvc.BankAccountSvcFacade) {
	h := newBankAccountHandler(accountService)

	accounts := rg.Group("/bank-accounts")
	{
		accounts.POST("", h.createBankAccount)
		accounts.GET("", h.listBankAccounts)
		accounts.GET("/:id", h.getBankAccount)
		accounts.PUT("/:id", h.updateBankAccount)
		accounts.DELETE("/:id", h.deleteBankAccount)
	}
}

// createBankAccount godoc
// @Summary Register a bank account
// @Description Registers a new bank account to receive ledger entries
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateBankAccountRequest true "Account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Account code already registered"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /bank-accounts [post]
func (h *bankAccountHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create bank account", slog.String("code", req.Code))

	account, err := h.accountService.CreateBankAccount(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating bank account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate account code", slog.String("code", req.Code))
			c.JSON(http.StatusConflict, gin.H{"error": "Account code already registered"})
		} else {
			logger.Error("Failed to create bank account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	logger.Info("Bank account created successfully", slog.Int64("account_id", account.ID))
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Description Lists all registered bank accounts
// @Tags bank-accounts
// @Produce  json
// @Success 200 {array} dto.BankAccountResponse
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /bank-accounts [get]
func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListBankAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list bank accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBankAccountResponse(accounts))
}

// getBankAccount godoc
// @Summary Get a bank account by ID
// @Description Retrieves details for a specific bank account
// @Tags bank-accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Router /bank-accounts/{id} [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetBankAccountByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Bank account not found", slog.Int64("account_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get bank account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// updateBankAccount godoc
// @Summary Update a bank account
// @Description Updates an account's details; country and opening date are immutable
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   id path int true "Account ID"
// @Param   account body dto.UpdateBankAccountRequest true "Fields to update"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account code already registered"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Router /bank-accounts/{id} [put]
func (h *bankAccountHandler) updateBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateBankAccount(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Bank account not found for update", slog.Int64("account_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating bank account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate account code on update", slog.Int64("account_id", id))
			c.JSON(http.StatusConflict, gin.H{"error": "Account code already registered"})
		} else {
			logger.Error("Failed to update bank account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		}
		return
	}

	logger.Info("Bank account updated successfully", slog.Int64("account_id", id))
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// deleteBankAccount godoc
// @Summary Delete a bank account
// @Description Removes an account; refused while ledger entries still reference it
// @Tags bank-accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account is still referenced"
// @Failure 500 {object} map[string]string "Failed to delete account"
// @Router /bank-accounts/{id} [delete]
func (h *bankAccountHandler) deleteBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.accountService.DeleteBankAccount(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Bank account not found for deletion", slog.Int64("account_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Bank account still referenced, deletion refused", slog.Int64("account_id", id))
			c.JSON(http.StatusConflict, gin.H{"error": "Account is still referenced by ledger entries"})
		} else {
			logger.Error("Failed to delete bank account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		}
		return
	}

	logger.Info("Bank account deleted successfully", slog.Int64("account_id", id))
	c.Status(http.StatusNoContent)
}
