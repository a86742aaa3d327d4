package app

import (
	"context"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/approval"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/audit"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/config"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/leavequery"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/metrics"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/middleware"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/rbac"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	cfg *config.Config,
	deps *drivers,
	metricsSvc *metrics.Service,
	logger *zap.Logger,
) error {
	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer("")
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(deps.rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(ctx); err != nil {
		return err
	}
	authz := middleware.NewAuthorizer(rbacService, deps.registry)

	// --- Services ---
	approvalService := approval.NewService(
		deps.store,
		deps.registry,
		deps.auditSink,
		approval.ValidationPolicy{
			RequireOrderedDates: cfg.Leave.ValidateDateOrder,
			RejectOverlaps:      cfg.Leave.RejectOverlap,
		},
		metricsSvc,
		logger,
	)
	queryService := leavequery.NewService(deps.store, deps.registry, deps.registry, logger)

	// --- Handlers ---
	approvalHandler := approval.NewHandler(approvalService, deps.registry, logger)
	queryHandler := leavequery.NewHandler(queryService, authz, cfg.Leave.Types, logger)
	auditHandler := audit.NewHandler(deps.auditReader, logger)
	rbacHandler := rbac.NewHandler(rbacService, deps.registry, logger)
	metricsHandler := metrics.NewHandler(metricsSvc)

	// --- Routes Registration ---
	api := router.Group(cfg.APIPrefix)
	api.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret),
		middleware.ExtractUserID(),
		middleware.RateLimitByUser(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst),
	)
	{
		approval.RegisterRoutes(api, approvalHandler, authz, deps.rdb)
		leavequery.RegisterRoutes(api, queryHandler, authz)
		audit.RegisterRoutes(api, auditHandler, authz)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	metrics.RegisterRoutes(router, metricsHandler)

	return nil
}
