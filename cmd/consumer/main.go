package main

import (
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/app"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/bootstrap"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/config"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
