package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"promptmart/internal/repositories"
	"promptmart/internal/services"
)

var Module = fx.Provide(
	provideReviewService, provideReviewRepo)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	promptRepo repositories.PromptRepository,
	orderRepo repositories.OrderRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, promptRepo, orderRepo)
}
