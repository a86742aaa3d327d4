package registry

import "time"

// Department rows carry the approval chain template of one department.
type Department struct {
	Code      string   `gorm:"type:varchar(20);primaryKey"`
	Name      string   `gorm:"size:255;not null"`
	Approvers RoleList `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Employee struct {
	ID             string `gorm:"type:varchar(64);primaryKey"`
	FullName       string `gorm:"size:255;not null"`
	DepartmentCode string `gorm:"type:varchar(20);index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Employee) TableName() string { return "users" }

type UserRole struct {
	UserID string `gorm:"type:varchar(64);primaryKey"`
	Role   string `gorm:"type:varchar(30);primaryKey"`
}
