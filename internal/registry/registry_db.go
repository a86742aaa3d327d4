package registry

import (
	"context"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/config"
	registryerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/registry/errors"

	"go.uber.org/zap"
)

// DB serves the registry from the departments, users and user_roles tables.
type DB struct {
	repo      Repository
	superuser string
	logger    *zap.Logger
}

func NewDB(repo Repository, superuserRole string, logger ...*zap.Logger) *DB {
	l := zap.L().Named("registry.db")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("registry.db")
	}
	return &DB{repo: repo, superuser: superuserRole, logger: l}
}

func (d *DB) ChainFor(ctx context.Context, departmentCode string) (RoleList, error) {
	code := normalizeCode(departmentCode)
	if code == "" {
		return nil, registryerrors.ErrUnknownDepartment
	}
	dept, err := d.repo.FindDepartment(ctx, code)
	if err != nil {
		d.logger.Error("find department failed", zap.String("department_code", code), zap.Error(err))
		return nil, err
	}
	if dept == nil {
		return nil, registryerrors.ErrUnknownDepartment
	}
	return dept.Approvers.Clone(), nil
}

func (d *DB) RolesOf(ctx context.Context, userID string) (RoleSet, error) {
	names, err := d.repo.FindRoles(ctx, userID)
	if err != nil {
		d.logger.Error("find roles failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return normalizeRoles(names, d.superuser), nil
}

func (d *DB) Lookup(ctx context.Context, userID string) (User, error) {
	emp, err := d.repo.FindEmployee(ctx, userID)
	if err != nil {
		return User{}, err
	}
	roles, err := d.RolesOf(ctx, userID)
	if err != nil {
		return User{}, err
	}
	if emp == nil {
		return User{ID: userID, Roles: roles}, nil
	}
	return User{
		ID:             emp.ID,
		FullName:       emp.FullName,
		DepartmentCode: emp.DepartmentCode,
		Roles:          roles,
	}, nil
}

// SeedFromConfig copies the configured reference data into the tables.
func SeedFromConfig(ctx context.Context, repo Repository, cfg config.ApprovalConfig) error {
	departments := make([]Department, 0, len(cfg.Departments))
	for _, dc := range cfg.Departments {
		chain := make(RoleList, 0, len(dc.Approvers))
		for _, a := range dc.Approvers {
			chain = append(chain, Role(a))
		}
		if err := ValidateChain(chain); err != nil {
			return err
		}
		departments = append(departments, Department{
			Code:      normalizeCode(dc.Code),
			Name:      dc.Name,
			Approvers: chain,
		})
	}

	employees := make([]Employee, 0, len(cfg.Users))
	var roles []UserRole
	for _, uc := range cfg.Users {
		employees = append(employees, Employee{
			ID:             uc.ID,
			FullName:       uc.FullName,
			DepartmentCode: normalizeCode(uc.DepartmentCode),
		})
		for _, r := range uc.Roles {
			roles = append(roles, UserRole{UserID: uc.ID, Role: r})
		}
	}

	return repo.Seed(ctx, departments, employees, roles)
}
