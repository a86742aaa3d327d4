package rbac

import (
	"context"
	"sync"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	// Enforce allows the request when any of its roles holds the permission.
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadPolicy(ctx context.Context) error {
	rows, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()
	for _, rp := range rows {
		if _, err := s.enforcer.AddPolicy(rp.Role, rp.Resource, rp.Action); err != nil {
			return err
		}
	}
	s.logger.Info("rbac policy loaded", zap.Int("role_permissions", len(rows)))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, role := range req.Roles {
		allowed, err := s.enforcer.Enforce(role, req.Resource, req.Action)
		if err != nil {
			s.logger.Error("rbac enforce failed",
				zap.String("user_id", req.UserID),
				zap.String("role", role),
				zap.Error(err),
			)
			return false, err
		}
		if allowed {
			return true, nil
		}
	}

	s.logger.Debug("rbac enforce denied",
		zap.String("user_id", req.UserID),
		zap.Strings("roles", req.Roles),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
	)
	return false, nil
}
