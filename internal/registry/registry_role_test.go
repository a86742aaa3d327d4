package registry_test

import (
	"testing"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		roles    registry.RoleSet
		required registry.Role
		want     bool
	}{
		{"holder of the role", registry.NewRoleSet(registry.RoleOM), registry.RoleOM, true},
		{"other role", registry.NewRoleSet(registry.RoleDM), registry.RoleOM, false},
		{"superuser bypass", registry.NewRoleSet(registry.RoleSuperuser), registry.RoleFM, true},
		{"empty set", registry.RoleSet{}, registry.RoleCEO, false},
		{"nil set", nil, registry.RoleCEO, false},
		{"done is never actionable", registry.NewRoleSet(registry.RoleSuperuser), registry.RoleDone, false},
		{"empty required", registry.NewRoleSet(registry.RoleSuperuser), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, registry.Authorize(tt.roles, tt.required))
		})
	}
}

func TestRoleList_ValueScan(t *testing.T) {
	chain := registry.RoleList{registry.RoleSUP, registry.RoleOM}

	v, err := chain.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["SUP","OM"]`, v)

	var scanned registry.RoleList
	assert.NoError(t, scanned.Scan([]byte(`["SUP","OM"]`)))
	assert.Equal(t, chain, scanned)

	assert.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	assert.Error(t, scanned.Scan(42))
	assert.Equal(t, 1, chain.IndexOf(registry.RoleOM))
	assert.Equal(t, -1, chain.IndexOf(registry.RoleCEO))
}

func TestRoleSet_Strings(t *testing.T) {
	set := registry.NewRoleSet(registry.RoleOM, registry.RoleCEO, registry.RoleDM)
	assert.Equal(t, []string{"CEO", "DM", "OM"}, set.Strings())
}
