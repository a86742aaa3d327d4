package registry

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sort"
)

// Role identifies an approver or organisational role.
type Role string

const (
	RoleEmployee  Role = "EMPLOYEE"
	RoleAdmin     Role = "ADMIN"
	RoleHR        Role = "HR"
	RoleOM        Role = "OM"  // operation manager
	RoleDM        Role = "DM"  // department manager
	RolePM        Role = "PM"  // plant manager
	RoleCEO       Role = "CEO" // chief executive
	RoleSuperuser Role = "SUPERUSER"
	RoleFM        Role = "FM"  // foreman
	RoleSUP       Role = "SUP" // supervisor

	// RoleDone marks a request whose chain has been exhausted or cut short.
	RoleDone Role = "DONE"
)

// RoleSet is the set of roles held by one user.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// Slice returns the roles sorted by name.
func (s RoleSet) Slice() []Role {
	out := make([]Role, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings is Slice as plain strings, used by the casbin guard.
func (s RoleSet) Strings() []string {
	roles := s.Slice()
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// Authorize reports whether a holder of roles may act on a step owned by
// required. Superusers satisfy every step. This is the only place the
// superuser bypass is defined.
func Authorize(roles RoleSet, required Role) bool {
	if required == "" || required == RoleDone {
		return false
	}
	return roles.Has(required) || roles.Has(RoleSuperuser)
}

// RoleList is an ordered approval chain. It is stored as a JSON array.
type RoleList []Role

func (l RoleList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]Role(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *RoleList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = RoleList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("registry: unsupported RoleList source")
	}
	var roles []Role
	if err := json.Unmarshal(raw, &roles); err != nil {
		return err
	}
	*l = roles
	return nil
}

// IndexOf returns the position of r in the chain or -1.
func (l RoleList) IndexOf(r Role) int {
	for i, role := range l {
		if role == r {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy.
func (l RoleList) Clone() RoleList {
	if l == nil {
		return nil
	}
	out := make(RoleList, len(l))
	copy(out, l)
	return out
}
