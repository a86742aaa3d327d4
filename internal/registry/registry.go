// Package registry resolves approval chain templates per department and
// role memberships per user. It is read-only reference data for the
// approval workflow.
package registry

import (
	"context"

	registryerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/registry/errors"
)

// User is the directory view of an employee.
type User struct {
	ID             string
	FullName       string
	DepartmentCode string
	Roles          RoleSet
}

// DisplayName falls back to the id for users without a name on file.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.ID
}

//go:generate mockgen -source=registry.go -destination=mock/registry_mock.go -package=mock
type Registry interface {
	// ChainFor returns a copy of the department's ordered approver roles.
	ChainFor(ctx context.Context, departmentCode string) (RoleList, error)
	// RolesOf returns every role held by userID. Unknown users hold none.
	RolesOf(ctx context.Context, userID string) (RoleSet, error)
}

type Directory interface {
	// Lookup never fails for unknown ids; it returns a User with only ID set.
	Lookup(ctx context.Context, userID string) (User, error)
}

// Source is a Registry that can also answer directory lookups.
type Source interface {
	Registry
	Directory
}

// ValidateChain rejects templates that name the same role twice.
func ValidateChain(chain RoleList) error {
	seen := make(map[Role]struct{}, len(chain))
	for _, r := range chain {
		if _, dup := seen[r]; dup {
			return registryerrors.ErrDuplicateRoleInChain
		}
		seen[r] = struct{}{}
	}
	return nil
}

// normalizeRoles maps a configured superuser role name onto RoleSuperuser so
// Authorize keeps a single definition of the bypass.
func normalizeRoles(names []string, superuser string) RoleSet {
	set := make(RoleSet, len(names)+1)
	for _, n := range names {
		r := Role(n)
		set[r] = struct{}{}
		if superuser != "" && n == superuser {
			set[RoleSuperuser] = struct{}{}
		}
	}
	return set
}
