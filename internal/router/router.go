package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/nexusgo/foodtracker/backend/internal/api"
	"github.com/nexusgo/foodtracker/backend/internal/metrics"
	"github.com/nexusgo/foodtracker/backend/internal/middleware"
	"github.com/nexusgo/foodtracker/backend/internal/service"
)

// Handlers groups the API handlers mounted under /api/v1.
type Handlers struct {
	Auth      *api.AuthHandler
	Accounts  *api.AccountHandler
	FoodItems *api.FoodItemHandler
	Recipes   *api.RecipeHandler
	Posts     *api.PostHandler
}

// Options carries the cross-cutting pieces of the router.
type Options struct {
	Log            zerolog.Logger
	Metrics        metrics.Recorder
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
	Ping           api.Pinger
	PostLimiter    middleware.Limiter
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, authService service.IAuthService, accounts service.IAccountService, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(opts.Log),
		middleware.RequestLogger(opts.Log, opts.Metrics),
		middleware.CORS(opts.AllowedOrigins),
	)

	router.GET("/health", api.HealthCheck(opts.Ping))
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(opts.Gatherer)))
	}

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService), middleware.RequireAccount(accounts, opts.Log))
	{
		account := protected.Group("/account")
		{
			account.GET("", h.Accounts.GetAccount)
			account.PUT("", h.Accounts.UpdateAccount)
			account.DELETE("", h.Accounts.DeleteAccount)
			account.GET("/profile-pic", h.Accounts.GetProfilePic)
			account.PUT("/profile-pic", h.Accounts.UploadProfilePic)
		}
		protected.GET("/accounts", h.Accounts.ListAccounts)

		items := protected.Group("/food-items")
		{
			items.GET("", h.FoodItems.ListFoodItems)
			items.GET("/all", h.FoodItems.ListAllFoodItems)
			items.GET("/expiring", h.FoodItems.ListExpiringFoodItems)
			items.POST("", h.FoodItems.CreateFoodItem)
			items.PUT("/:id", h.FoodItems.UpdateFoodItem)
			items.DELETE("/:id", h.FoodItems.DeleteFoodItem)
		}

		recipes := protected.Group("/recipes")
		{
			recipes.GET("", h.Recipes.ListRecipes)
			recipes.GET("/all", h.Recipes.ListAllRecipes)
			recipes.POST("", h.Recipes.CreateRecipe)
			recipes.PUT("/:id", h.Recipes.UpdateRecipe)
			recipes.DELETE("/:id", h.Recipes.DeleteRecipe)
		}

		posts := protected.Group("/posts")
		{
			posts.GET("", h.Posts.ListPosts)
			if opts.PostLimiter != nil {
				posts.POST("", middleware.RateLimit(opts.PostLimiter, opts.Metrics, opts.Log), h.Posts.CreatePost)
			} else {
				posts.POST("", h.Posts.CreatePost)
			}
			posts.DELETE("/:id", h.Posts.DeletePost)
		}
	}

	return router
}
