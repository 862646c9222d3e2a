package category_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"promptmart/internal/repositories"
	"promptmart/internal/services"
)

var Module = fx.Provide(
	provideCategoryService, provideCategoryRepo)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo)
}
