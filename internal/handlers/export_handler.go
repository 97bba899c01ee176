package handlers

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fintrack/internal/config"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/services"
)

// ExportHandler handles report downloads.
type ExportHandler struct {
	exportService services.ExportServicer
	auditService  services.AuditServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService services.ExportServicer, auditService services.AuditServicer) *ExportHandler {
	return &ExportHandler{exportService: exportService, auditService: auditService}
}

// ExportRequest represents the export query parameters
type ExportRequest struct {
	Type   string `form:"type" binding:"omitempty,export_type"`
	Range  string `form:"range"`
	Format string `form:"format" binding:"omitempty,export_format"`
}

// Export generates and downloads a financial report
// @Summary     Export financial data
// @Description Generate a CSV or PDF report of the user's history for a named date range
// @Tags        users
// @Produce     text/csv
// @Security    TokenAuth
// @Param       type query string false "Data type: all, income, expense, transfer, budget" default(all)
// @Param       range query string false "Date range: 1month, 6months, lastQuarter, lastYear" default(1month)
// @Param       format query string false "Output format: csv or pdf" default(csv)
// @Success     200 {file} binary "Report file"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Nothing to export"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.Type == "" {
		req.Type = "all"
	}
	if req.Format == "" {
		req.Format = "csv"
	}

	var buf bytes.Buffer
	result, err := h.exportService.Export(user, req.Type, req.Range, req.Format, &buf)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.persistCopy(result.Filename, buf.Bytes())

	h.auditService.Log(user.ID, "EXPORT", "report", 0, c.ClientIP(),
		map[string]interface{}{"type": req.Type, "range": req.Range, "format": req.Format, "records": result.Records})

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(200, result.ContentType, buf.Bytes())
}

// persistCopy keeps a server-side copy of the generated report. Failures are
// logged but never fail the download.
func (h *ExportHandler) persistCopy(filename string, data []byte) {
	dir := config.Get().ExportDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Get().Warnw("failed to create export directory", "dir", dir, "error", err)
		return
	}
	path := filepath.Join(dir, uuid.New().String()[:8]+"-"+filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Get().Warnw("failed to persist export copy", "path", path, "error", err)
	}
}
