package routes

import (
	"log/slog"

	"deliverus/configs"
	"deliverus/controllers"
	"deliverus/entity"
	"deliverus/middlewares"
	"deliverus/repository"
	"deliverus/services"
	"deliverus/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *slog.Logger) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	productRepo := repository.NewProductRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Controllers
	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL))
	productCtrl := controllers.NewProductController(services.NewProductService(db), log)
	restCtrl := controllers.NewRestaurantController(services.NewRestaurantService(restRepo), log)

	rules := validation.NewProductRules(restRepo, productRepo)
	ownerOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOwner)
	productExists := middlewares.ProductExists(productRepo)
	ownership := middlewares.RestaurantOwnership(restRepo)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Public
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:restaurantId", restCtrl.Show)
	r.GET("/restaurants/:restaurantId/products", productCtrl.ListByRestaurant)
	r.GET("/products/:productId", productExists, productCtrl.Show)
	r.GET("/products/:productId/image", productExists, productCtrl.Image)

	// Owner
	r.GET("/users/myrestaurants", ownerOnly, restCtrl.Mine)
	r.POST("/products", ownerOnly, middlewares.Validate(rules.Create()), ownership, productCtrl.Create)
	r.PUT("/products/:productId", ownerOnly, productExists, ownership, middlewares.Validate(rules.Update()), productCtrl.Update)
	r.DELETE("/products/:productId", ownerOnly, productExists, ownership, productCtrl.Delete)
}
