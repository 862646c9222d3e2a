package prompt_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"promptmart/internal/repositories"
	"promptmart/internal/services"
	"promptmart/pkg/utils"
)

var Module = fx.Provide(
	providePromptService, providePromptRepo, provideEmbeddingRepo)

func providePromptRepo(db *gorm.DB) repositories.PromptRepository {
	return repositories.NewPromptRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.IPromptEmbeddingRepository {
	return repositories.NewPromptEmbeddingRepository(db)
}

func providePromptService(
	promptRepo repositories.PromptRepository,
	categoryRepo repositories.CategoryRepository,
	favoriteRepo repositories.FavoriteRepository,
	embeddingRepo repositories.IPromptEmbeddingRepository,
	aiClient utils.EmbeddingClientInterface,
) services.PromptServiceInterface {
	return services.NewPromptService(promptRepo, categoryRepo, favoriteRepo, embeddingRepo, aiClient)
}
