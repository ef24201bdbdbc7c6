package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/service"
	"github.com/rs/zerolog/log"
)

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboardSummary godoc
// @Summary (Admin) Entity counts for the dashboard landing page
// @Tags Admin - Dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/dashboard-summary [get]
func (c *DashboardController) GetDashboardSummary(ctx *gin.Context) {
	summary, err := c.dashboardService.Summary()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetDashboardSummary: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute dashboard summary"})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
