package main

import (
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/app"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/bootstrap"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/config"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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

	apperror.Init()
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// build dependency + routes
	application, err := app.BuildApp(cfg, r, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("close app failed", zap.Error(err))
		}
	}()

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		application.AuditSink,
	)
}
