package complaint_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fixitfast/internal/repositories"
	"fixitfast/internal/services"
)

var Module = fx.Provide(
	provideComplaintService, provideComplaintRepo)

func provideComplaintRepo(db *gorm.DB) repositories.ComplaintRepository {
	return repositories.NewComplaintRepository(db)
}

func provideComplaintService(
	complaintRepo repositories.ComplaintRepository,
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
) services.ComplaintServiceInterface {
	return services.NewComplaintService(complaintRepo, accountRepo, mailService)
}
