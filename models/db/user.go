package dbmodels

import (
	"approval-flow-backend/models"
)

type User struct {
	BaseModel
	Name      string          `gorm:"type:varchar(255)"`
	Email     string          `gorm:"type:varchar(255);uniqueIndex"`
	Password  string          `gorm:"type:varchar(255)"` // bcrypt hash
	Role      models.UserRole `gorm:"type:varchar(20);index"`
	ManagerID *string         `gorm:"type:varchar(36);index"`
	Manager   *User           `gorm:"foreignKey:ManagerID"`
}

func (u User) HasManager() bool {
	return u.ManagerID != nil && *u.ManagerID != ""
}
