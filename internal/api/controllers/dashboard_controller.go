package controllers

import (
	"github.com/gin-gonic/gin"

	"fixitfast/internal/services"
	"fixitfast/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Mine returns the caller's own complaint statistics, computed fresh.
func (dc *DashboardController) Mine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dashboard, err := dc.dashboardService.UserDashboard(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, dashboard, "")
}

// AdminStats returns the system-wide operational overview.
func (dc *DashboardController) AdminStats(c *gin.Context) {
	dashboard, err := dc.dashboardService.AdminDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, dashboard, "")
}
