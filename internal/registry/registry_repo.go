package registry

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=registry_repo.go -destination=mock/registry_repo_mock.go -package=mock
type Repository interface {
	FindDepartment(ctx context.Context, code string) (*Department, error)
	FindEmployee(ctx context.Context, id string) (*Employee, error)
	FindRoles(ctx context.Context, userID string) ([]string, error)
	Seed(ctx context.Context, departments []Department, employees []Employee, roles []UserRole) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindDepartment returns nil without error when the code is unknown.
func (r *repository) FindDepartment(ctx context.Context, code string) (*Department, error) {
	var d Department
	err := r.db.WithContext(ctx).First(&d, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindEmployee returns nil without error when the id is unknown.
func (r *repository) FindEmployee(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindRoles(ctx context.Context, userID string) ([]string, error) {
	var roles []string
	err := r.db.WithContext(ctx).
		Model(&UserRole{}).
		Where("user_id = ?", userID).
		Order("role").
		Pluck("role", &roles).Error
	return roles, err
}

// Seed upserts reference data; existing rows are overwritten.
func (r *repository) Seed(ctx context.Context, departments []Department, employees []Employee, roles []UserRole) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(departments) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&departments).Error; err != nil {
				return err
			}
		}
		if len(employees) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&employees).Error; err != nil {
				return err
			}
		}
		if len(roles) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
