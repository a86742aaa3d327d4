package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/config"
	registryerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/registry/errors"
)

// Static serves chains and users from configuration held in memory.
type Static struct {
	chains map[string]RoleList
	users  map[string]User
}

func NewStatic(cfg config.ApprovalConfig) (*Static, error) {
	s := &Static{
		chains: make(map[string]RoleList, len(cfg.Departments)),
		users:  make(map[string]User, len(cfg.Users)),
	}

	for _, d := range cfg.Departments {
		code := normalizeCode(d.Code)
		if code == "" {
			return nil, registryerrors.ErrInvalidDepartmentCode
		}
		chain := make(RoleList, 0, len(d.Approvers))
		for _, a := range d.Approvers {
			chain = append(chain, Role(a))
		}
		if err := ValidateChain(chain); err != nil {
			return nil, fmt.Errorf("department %s: %w", code, err)
		}
		s.chains[code] = chain
	}

	for _, u := range cfg.Users {
		s.users[u.ID] = User{
			ID:             u.ID,
			FullName:       u.FullName,
			DepartmentCode: normalizeCode(u.DepartmentCode),
			Roles:          normalizeRoles(u.Roles, cfg.SuperuserRole),
		}
	}

	return s, nil
}

func (s *Static) ChainFor(_ context.Context, departmentCode string) (RoleList, error) {
	chain, ok := s.chains[normalizeCode(departmentCode)]
	if !ok {
		return nil, registryerrors.ErrUnknownDepartment
	}
	return chain.Clone(), nil
}

func (s *Static) RolesOf(_ context.Context, userID string) (RoleSet, error) {
	u, ok := s.users[userID]
	if !ok {
		return RoleSet{}, nil
	}
	out := make(RoleSet, len(u.Roles))
	for r := range u.Roles {
		out[r] = struct{}{}
	}
	return out, nil
}

func (s *Static) Lookup(ctx context.Context, userID string) (User, error) {
	u, ok := s.users[userID]
	if !ok {
		return User{ID: userID, Roles: RoleSet{}}, nil
	}
	roles, _ := s.RolesOf(ctx, userID)
	u.Roles = roles
	return u, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
