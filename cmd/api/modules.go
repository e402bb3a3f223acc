package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/nexusgo/foodtracker/backend/config"
	"github.com/nexusgo/foodtracker/backend/internal/api"
	"github.com/nexusgo/foodtracker/backend/internal/database"
	"github.com/nexusgo/foodtracker/backend/internal/logger"
	"github.com/nexusgo/foodtracker/backend/internal/metrics"
	"github.com/nexusgo/foodtracker/backend/internal/middleware"
	"github.com/nexusgo/foodtracker/backend/internal/router"
	"github.com/nexusgo/foodtracker/backend/internal/security"
	"github.com/nexusgo/foodtracker/backend/internal/server"
	"github.com/nexusgo/foodtracker/backend/internal/service"
)

var coreModule = fx.Module("core",
	fx.Provide(
		config.Load,
		logger.New,
		provideRegistry,
		fx.Annotate(metrics.NewCollector, fx.As(new(metrics.Recorder))),
	),
)

var storeModule = fx.Module("store",
	fx.Provide(
		provideDatabase,
		provideRedis,
	),
)

var serviceModule = fx.Module("services",
	fx.Provide(
		provideAccountService,
		fx.Annotate(service.NewFoodItemService, fx.As(new(service.IFoodItemService))),
		fx.Annotate(service.NewRecipeService, fx.As(new(service.IRecipeService))),
		fx.Annotate(service.NewPostService, fx.As(new(service.IPostService))),
		provideAuthService,
		security.NewContentSanitizer,
	),
)

var httpModule = fx.Module("http",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAccountHandler,
		api.NewFoodItemHandler,
		api.NewRecipeHandler,
		api.NewPostHandler,
		providePostLimiter,
		provideRouter,
		provideServer,
	),
)

// provideRegistry returns a registry carrying the process and Go runtime
// collectors alongside the application metrics.
func provideRegistry() (*prometheus.Registry, prometheus.Registerer) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, reg
}

func provideDatabase(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	if err := database.InitSchema(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return database.Close(db)
		},
	})
	return db, nil
}

// provideRedis returns a nil client when Redis is not configured.
func provideRedis(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) (*redis.Client, error) {
	client, err := database.NewRedisClient(cfg.Redis, log)
	if err != nil || client == nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func provideAccountService(db *gorm.DB, cfg *config.Config, log zerolog.Logger) (service.IAccountService, error) {
	policy, err := service.ParseDeletePolicy(cfg.Accounts.DeletePolicy)
	if err != nil {
		return nil, err
	}
	return service.NewAccountService(db, policy, log), nil
}

func provideAuthService(cfg *config.Config) service.IAuthService {
	return service.NewAuthService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
}

func providePostLimiter(client *redis.Client, cfg *config.Config, log zerolog.Logger) middleware.Limiter {
	if client == nil {
		log.Info().Msg("redis not configured, post rate limiting is per process")
	}
	return middleware.NewLimiter(client, middleware.PostCreationLimit(cfg.RateLimit.PostsPerHour))
}

type routerParams struct {
	fx.In

	Config    *config.Config
	Log       zerolog.Logger
	DB        *gorm.DB
	Registry  *prometheus.Registry
	Metrics   metrics.Recorder
	Auth      service.IAuthService
	Store     service.IAccountService
	Limiter   middleware.Limiter
	AuthH     *api.AuthHandler
	Accounts  *api.AccountHandler
	FoodItems *api.FoodItemHandler
	Recipes   *api.RecipeHandler
	Posts     *api.PostHandler
}

func provideRouter(p routerParams) *gin.Engine {
	if p.Config.Env == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	return router.SetupRouter(router.Handlers{
		Auth:      p.AuthH,
		Accounts:  p.Accounts,
		FoodItems: p.FoodItems,
		Recipes:   p.Recipes,
		Posts:     p.Posts,
	}, p.Auth, p.Store, router.Options{
		Log:            p.Log,
		Metrics:        p.Metrics,
		Gatherer:       p.Registry,
		AllowedOrigins: p.Config.Server.AllowedOrigins(),
		Ping: func(ctx context.Context) error {
			return database.HealthCheck(ctx, p.DB)
		},
		PostLimiter: p.Limiter,
	})
}

func provideServer(cfg *config.Config, engine *gin.Engine, log zerolog.Logger) *server.Server {
	return server.New(cfg.Server, engine, log)
}

func startServer(lc fx.Lifecycle, srv *server.Server) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return srv.Start()
		},
		OnStop: srv.Stop,
	})
}
