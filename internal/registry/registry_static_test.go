package registry_test

import (
	"context"
	"testing"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/config"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"
	registryerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/registry/errors"

	"github.com/stretchr/testify/assert"
)

func testApprovalConfig() config.ApprovalConfig {
	return config.ApprovalConfig{
		SuperuserRole: "SUPERUSER",
		Departments: []config.DepartmentConfig{
			{Code: "ACC", Name: "Accounting", Approvers: []string{"OM", "DM", "CEO"}},
			{Code: "PROD", Name: "Production", Approvers: []string{"FM", "SUP", "PM", "DM"}},
		},
		Users: []config.UserConfig{
			{ID: "u1", FullName: "Root", DepartmentCode: "hr", Roles: []string{"SUPERUSER", "CEO"}},
			{ID: "u3", FullName: "Mana", DepartmentCode: "PROD", Roles: []string{"EMPLOYEE", "DM"}},
		},
	}
}

func TestStatic_ChainFor(t *testing.T) {
	reg, err := registry.NewStatic(testApprovalConfig())
	assert.NoError(t, err)
	ctx := context.Background()

	t.Run("known department", func(t *testing.T) {
		chain, err := reg.ChainFor(ctx, "ACC")
		assert.NoError(t, err)
		assert.Equal(t, registry.RoleList{registry.RoleOM, registry.RoleDM, registry.RoleCEO}, chain)
	})

	t.Run("code is case insensitive", func(t *testing.T) {
		chain, err := reg.ChainFor(ctx, " prod ")
		assert.NoError(t, err)
		assert.Len(t, chain, 4)
		assert.Equal(t, registry.RoleFM, chain[0])
	})

	t.Run("unknown department", func(t *testing.T) {
		chain, err := reg.ChainFor(ctx, "XYZ")
		assert.ErrorIs(t, err, registryerrors.ErrUnknownDepartment)
		assert.Nil(t, chain)
	})

	t.Run("returned chain is a copy", func(t *testing.T) {
		chain, _ := reg.ChainFor(ctx, "ACC")
		chain[0] = registry.RoleHR

		again, _ := reg.ChainFor(ctx, "ACC")
		assert.Equal(t, registry.RoleOM, again[0])
	})
}

func TestStatic_RolesAndLookup(t *testing.T) {
	reg, err := registry.NewStatic(testApprovalConfig())
	assert.NoError(t, err)
	ctx := context.Background()

	roles, err := reg.RolesOf(ctx, "u3")
	assert.NoError(t, err)
	assert.True(t, roles.Has(registry.RoleDM))
	assert.False(t, roles.Has(registry.RoleSuperuser))

	roles, err = reg.RolesOf(ctx, "nobody")
	assert.NoError(t, err)
	assert.Empty(t, roles)

	u, err := reg.Lookup(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "Root", u.DisplayName())
	assert.Equal(t, "HR", u.DepartmentCode)

	u, err = reg.Lookup(ctx, "ghost")
	assert.NoError(t, err)
	assert.Equal(t, "ghost", u.DisplayName())
	assert.Empty(t, u.Roles)
}

func TestNewStatic_Validation(t *testing.T) {
	t.Run("duplicate role in chain", func(t *testing.T) {
		cfg := config.ApprovalConfig{Departments: []config.DepartmentConfig{
			{Code: "BAD", Approvers: []string{"OM", "DM", "OM"}},
		}}
		_, err := registry.NewStatic(cfg)
		assert.ErrorIs(t, err, registryerrors.ErrDuplicateRoleInChain)
	})

	t.Run("blank department code", func(t *testing.T) {
		cfg := config.ApprovalConfig{Departments: []config.DepartmentConfig{
			{Code: "  ", Approvers: []string{"OM"}},
		}}
		_, err := registry.NewStatic(cfg)
		assert.ErrorIs(t, err, registryerrors.ErrInvalidDepartmentCode)
	})

	t.Run("custom superuser role name", func(t *testing.T) {
		cfg := config.ApprovalConfig{
			SuperuserRole: "ROOT",
			Users:         []config.UserConfig{{ID: "r", Roles: []string{"ROOT"}}},
		}
		reg, err := registry.NewStatic(cfg)
		assert.NoError(t, err)
		roles, _ := reg.RolesOf(context.Background(), "r")
		assert.True(t, registry.Authorize(roles, registry.RoleCEO))
	})
}
