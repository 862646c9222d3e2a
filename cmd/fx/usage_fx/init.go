package usage_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"promptmart/internal/repositories"
	"promptmart/internal/services"
	"promptmart/pkg/utils"
)

var Module = fx.Provide(
	provideUsageService, provideUsageRepo)

func provideUsageRepo(db *gorm.DB) repositories.UsageRepositoryInterface {
	return repositories.NewUsageRepository(db)
}

func provideUsageService(
	usageRepo repositories.UsageRepositoryInterface,
	promptRepo repositories.PromptRepository,
	orderRepo repositories.OrderRepository,
	aiClient utils.CompletionClientInterface,
) services.UsageServiceInterface {
	return services.NewUsageService(usageRepo, promptRepo, orderRepo, aiClient)
}
