package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pedal-storefront/internal/catalog"
	"pedal-storefront/internal/checkout"
	"pedal-storefront/internal/config"
	"pedal-storefront/internal/logging"
	"pedal-storefront/internal/middleware"
	"pedal-storefront/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("config:", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatalln("logger:", err)
	}
	defer logger.Sync()

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("pedals", cat.Len()))

	provider := checkout.NewStripeProvider(cfg.StripeSecretKey)
	checkoutSvc := checkout.NewService(cat, provider, cfg.SiteURL, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(logger))
	routes.RegisterRoutes(router, cat, checkoutSvc)

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
