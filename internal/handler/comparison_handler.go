package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/shiftsight/shiftsight-api/internal/dto"
	"github.com/shiftsight/shiftsight-api/internal/service"
	appErrors "github.com/shiftsight/shiftsight-api/pkg/errors"
	"github.com/shiftsight/shiftsight-api/pkg/response"
)

type scheduleComparer interface {
	Compare(ctx context.Context, req dto.ComparisonRequest) (*dto.ComparisonResponse, error)
}

// ComparisonHandler exposes the multi-schedule comparison endpoint.
type ComparisonHandler struct {
	service  scheduleComparer
	validate *validator.Validate
}

// NewComparisonHandler constructs the handler.
func NewComparisonHandler(svc *service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{service: svc, validate: validator.New()}
}

// Compare godoc
// @Summary Compare N schedules side by side
// @Description Fetches every referenced schedule concurrently from the solver gateway; any failed fetch fails the whole batch.
// @Tags Comparisons
// @Accept json
// @Produce json
// @Param payload body dto.ComparisonRequest true "Comparison request"
// @Success 200 {object} response.Envelope
// @Router /comparisons [post]
func (h *ComparisonHandler) Compare(c *gin.Context) {
	var req dto.ComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid comparison payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "every schedule reference needs a schedule_id"))
		return
	}

	result, err := h.service.Compare(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
