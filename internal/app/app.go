package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/audit"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/config"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/leave"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/messaging/kafka"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/metrics"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/middleware"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/rbac"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// App owns the long-lived dependencies behind the HTTP router.
type App struct {
	AuditSink audit.Sink
	closers   []func() error
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

// drivers is what a storage driver provides to the modules.
type drivers struct {
	store       leave.Store
	registry    registry.Source
	auditSink   audit.Sink
	auditReader audit.Reader
	rbacRepo    rbac.Repository
	rdb         *redis.Client
}

func BuildApp(cfg *config.Config, router *gin.Engine, logger *zap.Logger) (*App, error) {
	ctx := context.Background()
	a := &App{}
	metricsSvc := metrics.NewService()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
		if err != nil {
			return nil, err
		}
		rdb = client
		a.closers = append(a.closers, client.Close)
	}

	var (
		deps *drivers
		err  error
	)
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		deps, err = buildPostgres(ctx, cfg, a, logger)
	default:
		deps, err = buildMemory(cfg, logger)
	}
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	deps.rdb = rdb

	if rdb != nil {
		deps.registry = registry.NewCached(deps.registry, rdb, cfg.Redis.ChainCacheTTL, logger).
			OnLookup(metricsSvc.ChainCacheLookup)
	}

	router.Use(
		middleware.RequestID(),
		middleware.Metrics(metricsSvc),
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst),
	)

	if err := registerModules(ctx, router, cfg, deps, metricsSvc, logger); err != nil {
		_ = a.Close()
		return nil, err
	}

	a.AuditSink = deps.auditSink
	logger.Info("application built",
		zap.String("store_driver", cfg.StoreDriver),
		zap.Bool("redis", rdb != nil),
	)
	return a, nil
}

func buildMemory(cfg *config.Config, logger *zap.Logger) (*drivers, error) {
	reg, err := registry.NewStatic(cfg.Approval)
	if err != nil {
		return nil, fmt.Errorf("approval config: %w", err)
	}

	memLog := audit.NewMemoryLog()
	return &drivers{
		store:       leave.NewMemoryStore(),
		registry:    reg,
		auditSink:   audit.MultiSink{memLog, audit.NewLoggerSink(logger)},
		auditReader: memLog,
		rbacRepo:    rbac.NewStaticRepository(rbac.DefaultPermissions),
	}, nil
}

func buildPostgres(ctx context.Context, cfg *config.Config, a *App, logger *zap.Logger) (*drivers, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, sqlDB.Close)

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	registryRepo := registry.NewRepository(db)
	if err := registry.SeedFromConfig(ctx, registryRepo, cfg.Approval); err != nil {
		return nil, fmt.Errorf("seed registry: %w", err)
	}

	rbacRepo := rbac.NewRepository(db)
	if err := rbacRepo.Seed(ctx, rbac.DefaultPermissions); err != nil {
		return nil, fmt.Errorf("seed rbac: %w", err)
	}

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	return &drivers{
		store:    leave.NewGormStore(db, logger),
		registry: registry.NewDB(registryRepo, cfg.Approval.SuperuserRole, logger),
		// The logger goes last so a rolled back outbox write is never logged.
		auditSink: audit.MultiSink{
			audit.NewOutboxSink(outboxRepo, cfg.Kafka.AuditTopic),
			audit.NewLoggerSink(logger),
		},
		auditReader: audit.NewService(audit.NewRepository(db), logger),
		rbacRepo:    rbacRepo,
	}, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&registry.Department{},
		&registry.Employee{},
		&registry.UserRole{},
		&leave.LeaveRequest{},
		&leave.Approval{},
		&audit.Log{},
		&rbac.RolePermission{},
		&kafka.OutboxRecord{},
	)
}
