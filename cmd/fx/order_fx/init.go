package order_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"promptmart/internal/repositories"
	"promptmart/internal/services"
)

var Module = fx.Provide(
	provideOrderService, provideOrderRepo)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideOrderService(orderRepo repositories.OrderRepository, promptRepo repositories.PromptRepository) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, promptRepo)
}
