package feedback_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fixitfast/internal/repositories"
	"fixitfast/internal/services"
)

var Module = fx.Provide(
	provideFeedbackService, provideFeedbackRepo)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepository {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	complaintRepo repositories.ComplaintRepository,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, complaintRepo)
}
