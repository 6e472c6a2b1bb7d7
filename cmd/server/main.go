package main

import (
	"strings"

	"quanngon-be/internal/api"
	"quanngon-be/internal/config"
	"quanngon-be/internal/db"
	"quanngon-be/internal/logger"
	"quanngon-be/internal/menu"
	"quanngon-be/internal/middleware"
	"quanngon-be/internal/notify"
	"quanngon-be/internal/order"
	"quanngon-be/internal/realtime"
	"quanngon-be/internal/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer db.Disconnect(database)

	settingsRepo := settings.NewRepository(database)
	settingsSvc := settings.NewService(settingsRepo)

	menuRepo := menu.NewRepository(database)
	menuSvc := menu.NewService(menuRepo)

	hub := realtime.NewHub()
	dispatcher := notify.NewDispatcher(hub, notify.NewTelegramNotifier(), settingsSvc)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, dispatcher)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		logger.RequestIDMiddleware(),
		logger.LoggingMiddleware(),
		middleware.CORSMiddleware(splitOrigins(cfg.WSOrigins)),
		middleware.RateLimitMiddleware(),
	)

	api.RegisterRoutes(
		engine,
		api.NewOrderHandler(orderSvc),
		api.NewMenuHandler(menuSvc),
		api.NewSettingsHandler(settingsSvc),
		realtime.NewWSHandler(hub, cfg.DataDir, cfg.WSOrigins),
	)

	logger.L().Info("server starting",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	if err := engine.Run(":" + cfg.AppPort); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
