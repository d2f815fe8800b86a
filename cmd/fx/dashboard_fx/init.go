package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fixitfast/internal/repositories"
	"fixitfast/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, provideDashboardRepo)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo)
}
