package handlers

import (
	"net/http"

	response "advancedtech_backoffice/internal/adapter/http/dto/response"
	"advancedtech_backoffice/internal/usecase"
	"advancedtech_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the landing page summary.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetSummary godoc
// @Summary  Get dashboard KPI summary
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} response.DashboardResponse
// @Router   /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.GetSummary(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}
