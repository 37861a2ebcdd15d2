package route

import (
	"github.com/Master1941/foodgram-project-react/controller"
	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/handler"
	"github.com/Master1941/foodgram-project-react/middleware"
	"github.com/Master1941/foodgram-project-react/repository"
	"github.com/Master1941/foodgram-project-react/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, controllers, services and handlers
// and registers the API routes. Everything is constructed once at
// startup; request handling carries no hidden globals.
func SetupRoutes(r *gin.Engine, cfg *entity.Config, gormDB *gorm.DB) {
	userRepository := repository.NewUserRepository(gormDB)
	tagRepository := repository.NewTagRepository(gormDB)
	ingredientRepository := repository.NewIngredientRepository(gormDB)
	recipeRepository := repository.NewRecipeRepository(gormDB)
	membershipRepository := repository.NewMembershipRepository(gormDB)
	subscriptionRepository := repository.NewSubscriptionRepository(gormDB)

	userController := controller.NewUserController(userRepository, subscriptionRepository)
	tagController := controller.NewTagController(tagRepository)
	ingredientController := controller.NewIngredientController(ingredientRepository)
	recipeController := controller.NewRecipeController(
		recipeRepository,
		tagRepository,
		ingredientRepository,
		membershipRepository,
		subscriptionRepository,
		cfg,
	)

	authService := service.NewAuthService(userController, cfg)
	membershipService := service.NewMembershipService(membershipRepository, recipeRepository)
	shoppingListService := service.NewShoppingListService(membershipRepository)
	subscriptionService := service.NewSubscriptionService(subscriptionRepository, userRepository, recipeRepository)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userController, cfg)
	tagHandler := handler.NewTagHandler(tagController)
	ingredientHandler := handler.NewIngredientHandler(ingredientController)
	recipeHandler := handler.NewRecipeHandler(recipeController, userController, membershipService, shoppingListService, cfg)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService, cfg)

	r.Static("/media", cfg.MediaRoot)

	api := r.Group("/api")

	// Public endpoints. The optional middleware records the requester
	// identity when a token is present so the viewer-relative flags and
	// membership filters work for authenticated readers.
	public := api.Group("/", middleware.OptionalJWT(cfg))
	public.POST("/auth/token/login/", authHandler.Login)
	public.POST("/users/", userHandler.Create)
	public.GET("/users/", userHandler.List)
	public.GET("/users/:id/", userHandler.Get)
	public.GET("/tags/", tagHandler.List)
	public.GET("/tags/:id/", tagHandler.Get)
	public.GET("/ingredients/", ingredientHandler.List)
	public.GET("/ingredients/:id/", ingredientHandler.Get)
	public.GET("/recipes/", recipeHandler.List)
	public.GET("/recipes/:id/", recipeHandler.Get)

	// Everything below requires a valid token.
	protected := api.Group("/", middleware.AuthenticateJWT(cfg))
	protected.POST("/auth/token/logout/", authHandler.Logout)
	protected.GET("/users/me/", userHandler.Me)
	protected.POST("/users/set_password/", userHandler.SetPassword)
	protected.GET("/users/subscriptions/", subscriptionHandler.List)
	protected.POST("/users/:id/subscribe/", subscriptionHandler.Subscribe)
	protected.DELETE("/users/:id/subscribe/", subscriptionHandler.Unsubscribe)

	protected.POST("/recipes/", recipeHandler.Create)
	protected.PUT("/recipes/:id/", recipeHandler.Update)
	protected.PATCH("/recipes/:id/", recipeHandler.Update)
	protected.DELETE("/recipes/:id/", recipeHandler.Delete)
	protected.GET("/recipes/download_shopping_cart/", recipeHandler.DownloadShoppingCart)
	protected.POST("/recipes/:id/favorite/", recipeHandler.AddFavorite)
	protected.DELETE("/recipes/:id/favorite/", recipeHandler.RemoveFavorite)
	protected.POST("/recipes/:id/shopping_cart/", recipeHandler.AddToCart)
	protected.DELETE("/recipes/:id/shopping_cart/", recipeHandler.RemoveFromCart)
}
