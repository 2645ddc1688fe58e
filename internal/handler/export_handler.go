package handler

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shiftsight/shiftsight-api/internal/dto"
	"github.com/shiftsight/shiftsight-api/internal/service"
	"github.com/shiftsight/shiftsight-api/pkg/response"
)

type scheduleExporter interface {
	Export(ctx context.Context, solutionID, format string) (*dto.ExportResponse, error)
	Open(token string) (*os.File, string, error)
}

// ExportHandler exposes schedule export endpoints.
type ExportHandler struct {
	service scheduleExporter
}

// NewExportHandler constructs the handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Export godoc
// @Summary Render a schedule export and return a signed download reference
// @Tags Exports
// @Produce json
// @Param id path string true "Solution ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {object} response.Envelope
// @Router /solutions/{id}/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	result, err := h.service.Export(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Download godoc
// @Summary Download a rendered schedule export
// @Tags Exports
// @Param token path string true "Signed export token"
// @Success 200
// @Router /exports/{token} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	file, filename, err := h.service.Open(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close() //nolint:errcheck

	contentType := "text/csv"
	if strings.HasSuffix(filename, ".pdf") {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", contentType)

	info, err := file.Stat()
	if err != nil {
		response.Error(c, err)
		return
	}
	c.DataFromReader(http.StatusOK, info.Size(), contentType, file, nil)
}
