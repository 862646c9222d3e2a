package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"promptmart/cmd/fx/ai_fx"
	"promptmart/cmd/fx/category_fx"
	"promptmart/cmd/fx/controllers_fx"
	"promptmart/cmd/fx/db_fx"
	"promptmart/cmd/fx/favorite_fx"
	"promptmart/cmd/fx/order_fx"
	"promptmart/cmd/fx/prompt_fx"
	"promptmart/cmd/fx/review_fx"
	"promptmart/cmd/fx/usage_fx"
	"promptmart/cmd/fx/user_fx"
	"promptmart/internal/api/controllers"
	"promptmart/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		user_fx.Module,
		category_fx.Module,
		prompt_fx.Module,
		order_fx.Module,
		review_fx.Module,
		favorite_fx.Module,
		usage_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	categoryController *controllers.CategoryController,
	promptController *controllers.PromptController,
	orderController *controllers.OrderController,
	reviewController *controllers.ReviewController,
	favoriteController *controllers.FavoriteController,
	usageController *controllers.UsageController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		authController,
		categoryController,
		promptController,
		orderController,
		reviewController,
		favoriteController,
		usageController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	categoryController *controllers.CategoryController,
	promptController *controllers.PromptController,
	orderController *controllers.OrderController,
	reviewController *controllers.ReviewController,
	favoriteController *controllers.FavoriteController,
	usageController *controllers.UsageController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/refresh", authController.RefreshToken)

	usersGroup := r.Group("/users")
	usersGroup.GET("/me", middleware.JWTAuthMiddleware(), authController.GetMe)
	usersGroup.PUT("/me", middleware.JWTAuthMiddleware(), authController.UpdateMe)
	usersGroup.PUT("/me/password", middleware.JWTAuthMiddleware(), authController.ChangePassword)
	usersGroup.GET("", middleware.JWTAuthMiddleware(), middleware.RequireRoles("admin"), authController.ListUsers)
	usersGroup.DELETE("/:id", middleware.JWTAuthMiddleware(), middleware.RequireRoles("admin"), authController.DeactivateUser)

	categoryGroup := r.Group("/categories")
	categoryGroup.GET("", categoryController.ListCategories)
	categoryGroup.GET("/:id", categoryController.GetCategory)
	categoryGroup.POST("", middleware.JWTAuthMiddleware(), middleware.RequireRoles("admin"), categoryController.CreateCategory)
	categoryGroup.PUT("/:id", middleware.JWTAuthMiddleware(), middleware.RequireRoles("admin"), categoryController.UpdateCategory)
	categoryGroup.DELETE("/:id", middleware.JWTAuthMiddleware(), middleware.RequireRoles("admin"), categoryController.DeleteCategory)

	promptGroup := r.Group("/prompts")
	promptGroup.GET("", middleware.OptionalJWTMiddleware(), promptController.ListPrompts)
	promptGroup.GET("/me", middleware.JWTAuthMiddleware(), middleware.RequireRoles("seller", "admin"), promptController.ListMyPrompts)
	promptGroup.GET("/:id", middleware.OptionalJWTMiddleware(), promptController.GetPrompt)
	promptGroup.GET("/:id/similar", promptController.GetSimilarPrompts)
	promptGroup.GET("/:id/reviews", reviewController.ListPromptReviews)
	promptGroup.POST("", middleware.JWTAuthMiddleware(), middleware.RequireRoles("seller", "admin"), promptController.CreatePrompt)
	promptGroup.PUT("/:id", middleware.JWTAuthMiddleware(), middleware.RequireRoles("seller", "admin"), promptController.UpdatePrompt)
	promptGroup.DELETE("/:id", middleware.JWTAuthMiddleware(), middleware.RequireRoles("seller", "admin"), promptController.DeletePrompt)
	promptGroup.GET("/:id/favorite", middleware.JWTAuthMiddleware(), favoriteController.CheckFavorite)
	promptGroup.POST("/:id/favorite", middleware.JWTAuthMiddleware(), favoriteController.AddFavorite)
	promptGroup.DELETE("/:id/favorite", middleware.JWTAuthMiddleware(), favoriteController.RemoveFavorite)
	promptGroup.POST("/:id/run", middleware.JWTAuthMiddleware(), usageController.RunPrompt)

	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.JWTAuthMiddleware())
	orderGroup.POST("", orderController.CreateOrder)
	orderGroup.GET("", orderController.ListMyOrders)
	orderGroup.GET("/:id", orderController.GetOrder)
	orderGroup.POST("/:id/payments", orderController.CreatePayment)
	orderGroup.PUT("/:id/status", middleware.RequireRoles("admin"), orderController.UpdateOrderStatus)

	paymentGroup := r.Group("/payments")
	paymentGroup.Use(middleware.JWTAuthMiddleware())
	paymentGroup.PUT("/:id/status", middleware.RequireRoles("admin"), orderController.UpdatePaymentStatus)

	reviewGroup := r.Group("/reviews")
	reviewGroup.Use(middleware.JWTAuthMiddleware())
	reviewGroup.POST("", reviewController.CreateReview)
	reviewGroup.PUT("/:id", reviewController.UpdateReview)
	reviewGroup.DELETE("/:id", reviewController.DeleteReview)
	reviewGroup.GET("/check-purchase/:id", orderController.CheckPurchase)

	r.GET("/favorites", middleware.JWTAuthMiddleware(), favoriteController.ListFavorites)
	r.GET("/usage/me", middleware.JWTAuthMiddleware(), usageController.ListMyUsage)
}
