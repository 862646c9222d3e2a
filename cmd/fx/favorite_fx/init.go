package favorite_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"promptmart/internal/repositories"
	"promptmart/internal/services"
)

var Module = fx.Provide(
	provideFavoriteService, provideFavoriteRepo)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(favoriteRepo repositories.FavoriteRepository, promptRepo repositories.PromptRepository) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, promptRepo)
}
