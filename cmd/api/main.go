package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"yehagerbet-backend/internal/config"
	"yehagerbet-backend/internal/handlers"
	"yehagerbet-backend/internal/logger"
	"yehagerbet-backend/internal/middleware"
	"yehagerbet-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	zlog, err := logger.New("betting-api", cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	svc := services.NewMongoService(cfg, zlog)
	defer svc.Close()

	bootstrap(svc, zlog)

	healthHandler := handlers.NewHealthHandler(svc, cfg)
	userHandler := handlers.NewUserHandler(svc)
	walletHandler := handlers.NewWalletHandler(svc)
	matchHandler := handlers.NewMatchHandler(svc)
	betHandler := handlers.NewBetHandler(svc)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(zlog))
	router.Use(middleware.Metrics())

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "*")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/", healthHandler.Root)
	router.GET("/test", healthHandler.Test)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.GET("/:user_id", userHandler.GetUser)
		}

		wallet := api.Group("/wallet")
		{
			wallet.POST("/topup", walletHandler.TopUp)
			wallet.GET("/transactions", walletHandler.ListTransactions)
		}

		api.GET("/matches", matchHandler.ListMatches)

		api.GET("/bets", betHandler.ListBets)
		api.POST("/bets", betHandler.PlaceBet)
	}

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}

// bootstrap builds indexes and seeds sample matches. Failures are logged,
// never fatal: the API still serves, reporting the degraded database via
// /test.
func bootstrap(svc *services.MongoService, zlog *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := svc.EnsureIndexes(ctx); err != nil {
		zlog.Warn("index creation failed", zap.Error(err))
	}
	if err := svc.SeedMatches(ctx); err != nil {
		zlog.Warn("match seeding failed", zap.Error(err))
	}
}
