package controllers_fx

import (
	"go.uber.org/fx"

	"promptmart/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewPromptController),
	fx.Provide(controllers.NewOrderController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewFavoriteController),
	fx.Provide(controllers.NewUsageController))
