package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/primeonhub/agrocontabil_app/internal/core/ports/services"
	"github.com/primeonhub/agrocontabil_app/internal/middleware"
)

// exportHandler handles HTTP requests for the fiscal file exports.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

// newExportHandler creates a new exportHandler.
func newExportHandler(es portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{
		exportService: es,
	}
}

// registerExportRoutes registers routes for file exports.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade) {
	h := newExportHandler(exportService)

	exports := rg.Group("/exports")
	{
		exports.GET("/lcdpr", h.exportLCDPR)
		exports.GET("/entries.csv", h.exportEntriesCSV)
	}
}

// exportLCDPR godoc
// @Summary Export the LCDPR text file
// @Description Renders every registered property, account, participant and ledger entry as a pipe-delimited LCDPR file
// @Tags exports
// @Produce  plain
// @Success 200 {string} string "LCDPR file content"
// @Failure 500 {object} map[string]string "Failed to generate export"
// @Router /exports/lcdpr [get]
func (h *exportHandler) exportLCDPR(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// Rendered into memory first so a mid-file failure never leaks a
	// truncated download with a 200 status.
	var buf bytes.Buffer
	if err := h.exportService.WriteLCDPR(c.Request.Context(), &buf); err != nil {
		logger.Error("Failed to generate LCDPR export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate export"})
		return
	}

	logger.Info("LCDPR export generated", slog.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", `attachment; filename="lcdpr.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// exportEntriesCSV godoc
// @Summary Export ledger entries as CSV
// @Description Renders every ledger entry as a semicolon-delimited CSV file
// @Tags exports
// @Produce  text/csv
// @Success 200 {string} string "CSV file content"
// @Failure 500 {object} map[string]string "Failed to generate export"
// @Router /exports/entries.csv [get]
func (h *exportHandler) exportEntriesCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var buf bytes.Buffer
	if err := h.exportService.WriteEntriesCSV(c.Request.Context(), &buf); err != nil {
		logger.Error("Failed to generate CSV export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate export"})
		return
	}

	logger.Info("CSV export generated", slog.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", `attachment; filename="lancamentos.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
