package attendance_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fixitfast/internal/repositories"
	"fixitfast/internal/services"
)

var Module = fx.Provide(
	provideAttendanceService, provideAttendanceRepo)

func provideAttendanceRepo(db *gorm.DB) repositories.AttendanceRepository {
	return repositories.NewAttendanceRepository(db)
}

func provideAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	accountRepo repositories.AccountRepository,
) services.AttendanceServiceInterface {
	return services.NewAttendanceService(attendanceRepo, accountRepo)
}
