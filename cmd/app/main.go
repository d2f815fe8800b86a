package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"fixitfast/cmd/fx/account_fx"
	"fixitfast/cmd/fx/attendance_fx"
	"fixitfast/cmd/fx/complaint_fx"
	"fixitfast/cmd/fx/controllers_fx"
	"fixitfast/cmd/fx/dashboard_fx"
	"fixitfast/cmd/fx/db_fx"
	"fixitfast/cmd/fx/feedback_fx"
	"fixitfast/cmd/fx/jobs_fx"
	"fixitfast/cmd/fx/mail_fx"
	"fixitfast/cmd/fx/memcache_fx"
	"fixitfast/internal/api/controllers"
	"fixitfast/internal/config"
	"fixitfast/internal/repositories"
	"fixitfast/pkg/logger"
	"fixitfast/pkg/middleware"
	"fixitfast/pkg/utils"
)

func main() {
	app := fx.New(
		fx.Provide(provideConfig),

		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		complaint_fx.Module,
		feedback_fx.Module,
		attendance_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,
		jobs_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideConfig() *config.Config {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	utils.SetJWTSecret(cfg.JWTSecret)
	repositories.SetQueryTimeout(cfg.QueryTimeout)
	return cfg
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("HTTP server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	complaintController *controllers.ComplaintController,
	labourController *controllers.LabourController,
	adminController *controllers.AdminController,
	feedbackController *controllers.FeedbackController,
	attendanceController *controllers.AttendanceController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(logger.GinLogger())
	r.Use(logger.GinRecovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, authController, complaintController, labourController, adminController, feedbackController, attendanceController, dashboardController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	authController *controllers.AuthController,
	complaintController *controllers.ComplaintController,
	labourController *controllers.LabourController,
	adminController *controllers.AdminController,
	feedbackController *controllers.FeedbackController,
	attendanceController *controllers.AttendanceController,
	dashboardController *controllers.DashboardController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", authController.SignUp)
	auth.POST("/login", authController.Login)
	auth.POST("/admin/signup", authController.AdminSignUp)
	auth.POST("/admin/login", authController.AdminLogin)
	auth.POST("/admin/change-password", authController.ChangeAdminPassword)
	auth.POST("/forgot-password", authController.ForgotPassword)
	auth.POST("/reset-password", authController.ResetPassword)
	auth.GET("/me", middleware.JWTAuthMiddleware(), authController.Me)

	complaints := api.Group("/complaints", middleware.JWTAuthMiddleware())
	complaints.POST("", complaintController.Create)
	complaints.GET("/my", complaintController.ListMine)
	complaints.GET("/:id", complaintController.Get)
	complaints.PUT("/:id", complaintController.Update)
	complaints.DELETE("/:id", complaintController.Delete)
	complaints.POST("/:id/like", complaintController.ToggleLike)

	labour := api.Group("/labour", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("labour"))
	labour.GET("/complaints", labourController.ListAssigned)
	labour.POST("/complaints/:id/request-status", labourController.RequestStatus)
	labour.POST("/attendance", attendanceController.Record)
	labour.GET("/attendance", attendanceController.ListMine)
	labour.GET("/attendance/status", attendanceController.Status)
	labour.GET("/attendance/summary", attendanceController.Summary)

	admin := api.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin", "superadmin"))
	admin.GET("/complaints", adminController.ListComplaints)
	admin.GET("/complaints/pending-updates", adminController.ListPendingUpdates)
	admin.POST("/complaints/:id/approve-status", adminController.ApproveStatus)
	admin.PUT("/complaints/:id/status", adminController.SetStatus)
	admin.POST("/complaints/:id/assign", adminController.Assign)
	admin.POST("/labours", adminController.CreateLabour)
	admin.GET("/labours", adminController.ListLabours)
	admin.PUT("/labours/:id", adminController.UpdateLabour)
	admin.GET("/labours/:id/attendance", attendanceController.AdminList)
	admin.POST("/labours/:id/attendance", attendanceController.AdminCorrect)
	admin.GET("/labours/:id/attendance/summary", attendanceController.AdminSummary)
	admin.GET("/feedback", feedbackController.ListAll)
	admin.PUT("/feedback/:id/moderate", feedbackController.Moderate)

	superadmin := api.Group("/superadmin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("superadmin"))
	superadmin.DELETE("/labours/:id", adminController.DeleteLabour)
	superadmin.PUT("/accounts/:id/role", adminController.UpdateRole)

	feedback := api.Group("/feedback", middleware.JWTAuthMiddleware())
	feedback.POST("", feedbackController.Submit)
	feedback.GET("/my", feedbackController.ListMine)
	feedback.GET("/complaint/:id", feedbackController.ListForComplaint)
	feedback.DELETE("/:id", feedbackController.Delete)

	dashboard := api.Group("/dashboard", middleware.JWTAuthMiddleware())
	dashboard.GET("/me", dashboardController.Mine)
	dashboard.GET("/admin/stats", middleware.RoleMiddleware("admin", "superadmin"), dashboardController.AdminStats)
}
