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

// reportingHandler handles HTTP requests for derived views over the ledger.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes for balances, rollups and the
// dashboard summary.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/account-balances", h.listAccountBalances)
		reports.GET("/account-balances/:id", h.getAccountBalance)
		reports.GET("/categories", h.listCategorySummaries)
		reports.GET("/categories/:category", h.getCategoryRollup)
		reports.GET("/summary", h.getPeriodSummary)
	}
}

// listAccountBalances godoc
// @Summary List current account balances
// @Description Reports the signed current balance of every bank account, taken from each account's latest ledger entry
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.AccountBalanceResponse
// @Failure 500 {object} map[string]string "Failed to list balances"
// @Router /reports/account-balances [get]
func (h *reportingHandler) listAccountBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.reportingService.ListAccountBalances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list account balances from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountBalanceResponse(balances))
}

// getAccountBalance godoc
// @Summary Get one account's current balance
// @Description Reports an account's signed current balance; zero when the account has no entries
// @Tags reports
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Router /reports/account-balances/{id} [get]
func (h *reportingHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	balance, err := h.reportingService.GetAccountBalance(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for balance", slog.Int64("account_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account balance from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountBalanceResponse(balance))
}

// listCategorySummaries godoc
// @Summary List category rollups for a month
// @Description Reports total inflow and outflow per category for one calendar month
// @Tags reports
// @Produce  json
// @Param   year query int true "Calendar year"
// @Param   month query int true "Calendar month (1-12)"
// @Success 200 {array} dto.CategorySummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list rollups"
// @Router /reports/categories [get]
func (h *reportingHandler) listCategorySummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.MonthQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListCategorySummaries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summaries, err := h.reportingService.ListCategorySummaries(c.Request.Context(), params.Year, params.Month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing category summaries", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list category summaries from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rollups"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategorySummaryResponse(summaries))
}

// getCategoryRollup godoc
// @Summary Get one category's monthly rollup
// @Description Reports total inflow and outflow for one category in one calendar month; totals are zero when nothing matches
// @Tags reports
// @Produce  json
// @Param   category path string true "Category name"
// @Param   year query int true "Calendar year"
// @Param   month query int true "Calendar month (1-12)"
// @Success 200 {object} dto.CategorySummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to retrieve rollup"
// @Router /reports/categories/{category} [get]
func (h *reportingHandler) getCategoryRollup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	category := c.Param("category")

	var params dto.MonthQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetCategoryRollup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.reportingService.GetCategoryRollup(c.Request.Context(), category, params.Year, params.Month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error getting category rollup", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get category rollup from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rollup"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCategorySummaryResponse(summary))
}

// getPeriodSummary godoc
// @Summary Get the dashboard summary
// @Description Aggregates income, expenses, net result and percentage split over a date range, plus the total balance across all accounts. Both range ends are optional.
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date, inclusive (YYYY-MM-DD)"
// @Param   to query string false "End date, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.PeriodSummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /reports/summary [get]
func (h *reportingHandler) getPeriodSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PeriodQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetPeriodSummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.reportingService.GetPeriodSummary(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error building period summary", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build period summary from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodSummaryResponse(summary))
}
