package controllers_fx

import (
	"go.uber.org/fx"

	"fixitfast/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewComplaintController),
	fx.Provide(controllers.NewLabourController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(controllers.NewAttendanceController),
	fx.Provide(controllers.NewDashboardController),
)
