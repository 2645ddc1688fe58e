package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shiftsight/shiftsight-api/internal/dto"
	"github.com/shiftsight/shiftsight-api/internal/service"
	appErrors "github.com/shiftsight/shiftsight-api/pkg/errors"
	"github.com/shiftsight/shiftsight-api/pkg/response"
)

// maxSolutionBytes caps uploaded solver documents.
const maxSolutionBytes = 8 << 20

type solutionAnalyzer interface {
	Analyze(ctx context.Context, raw []byte) (*dto.AnalyzedSolution, error)
	Get(ctx context.Context, id string) (*dto.AnalyzedSolution, error)
	Delete(ctx context.Context, id string) error
	EmployeeHours(ctx context.Context, id string, employeeID int) (*dto.EmployeeHoursResponse, error)
}

type exportCleaner interface {
	Remove(solutionID string) error
}

// SolutionHandler exposes solution upload, retrieval and deletion endpoints.
type SolutionHandler struct {
	service solutionAnalyzer
	exports exportCleaner
}

// NewSolutionHandler constructs the handler.
func NewSolutionHandler(svc *service.AnalysisService, exports *service.ExportService) *SolutionHandler {
	return &SolutionHandler{service: svc, exports: exports}
}

// Upload godoc
// @Summary Upload and analyze a raw solver solution document
// @Description Runs the schema check, decode and all analysis passes; the annotated model is retrievable by the returned id.
// @Tags Solutions
// @Accept json
// @Produce json
// @Param payload body object true "Raw solver solution document"
// @Success 201 {object} response.Envelope
// @Router /solutions [post]
func (h *SolutionHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSolutionBytes)
	raw, err := c.GetRawData()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "unreadable solution payload"))
		return
	}
	if len(raw) == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "empty solution payload"))
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), raw)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Get godoc
// @Summary Get a previously analyzed solution
// @Tags Solutions
// @Produce json
// @Param id path string true "Solution ID"
// @Success 200 {object} response.Envelope
// @Router /solutions/{id} [get]
func (h *SolutionHandler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Delete godoc
// @Summary Delete an analyzed solution
// @Description Drops the cached solution and its rendered export files; the id and any signed export tokens stop resolving.
// @Tags Solutions
// @Param id path string true "Solution ID"
// @Success 204
// @Router /solutions/{id} [delete]
func (h *SolutionHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	if h.exports != nil {
		if err := h.exports.Remove(id); err != nil {
			response.Error(c, err)
			return
		}
	}
	response.NoContent(c)
}

// EmployeeHours godoc
// @Summary Get one employee's workload stats in an analyzed solution
// @Tags Solutions
// @Produce json
// @Param id path string true "Solution ID"
// @Param employeeId path int true "Employee ID"
// @Success 200 {object} response.Envelope
// @Router /solutions/{id}/employees/{employeeId}/hours [get]
func (h *SolutionHandler) EmployeeHours(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("employeeId"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "employeeId must be an integer"))
		return
	}
	result, err := h.service.EmployeeHours(c.Request.Context(), c.Param("id"), employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
