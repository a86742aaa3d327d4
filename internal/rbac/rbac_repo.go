package rbac

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RolePermission grants Role the Action on Resource.
type RolePermission struct {
	Role     string `gorm:"type:varchar(30);primaryKey"`
	Resource string `gorm:"type:varchar(40);primaryKey"`
	Action   string `gorm:"type:varchar(40);primaryKey"`
}

func (RolePermission) TableName() string { return "role_permissions" }

const (
	ResourceLeave = "leave"
	ResourceAudit = "audit"

	ActionReadAll = "read_all"
	ActionPurge   = "purge"
	ActionRead    = "read"
)

// DefaultPermissions seeds the policy table and backs the memory driver.
var DefaultPermissions = []RolePermission{
	{Role: "SUPERUSER", Resource: "*", Action: "*"},
	{Role: "ADMIN", Resource: ResourceLeave, Action: ActionReadAll},
	{Role: "ADMIN", Resource: ResourceLeave, Action: ActionPurge},
	{Role: "ADMIN", Resource: ResourceAudit, Action: ActionRead},
	{Role: "HR", Resource: ResourceLeave, Action: ActionReadAll},
	{Role: "HR", Resource: ResourceAudit, Action: ActionRead},
	{Role: "CEO", Resource: ResourceLeave, Action: ActionReadAll},
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions(ctx context.Context) ([]RolePermission, error)
	Seed(ctx context.Context, rows []RolePermission) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermission, error) {
	var rows []RolePermission
	err := r.db.WithContext(ctx).
		Order("role, resource, action").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Seed(ctx context.Context, rows []RolePermission) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

type staticRepository struct {
	rows []RolePermission
}

// NewStaticRepository serves a fixed policy list.
func NewStaticRepository(rows []RolePermission) Repository {
	return &staticRepository{rows: rows}
}

func (r *staticRepository) GetRolePermissions(context.Context) ([]RolePermission, error) {
	out := make([]RolePermission, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *staticRepository) Seed(_ context.Context, rows []RolePermission) error {
	r.rows = append(r.rows, rows...)
	return nil
}
