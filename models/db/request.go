package dbmodels

import (
	"approval-flow-backend/models"
)

// Request is the workflow entity. CreatedBy, AssignedTo and ManagerID are
// immutable after create; ManagerID is the assignee's manager frozen at
// creation time, so a later directory change never moves approval
// authority. Status changes only through the workflow engine.
type Request struct {
	BaseModel
	Title       string `gorm:"type:varchar(255)"`
	Description string
	CreatedBy   string               `gorm:"type:varchar(36);index"`
	Creator     *User                `gorm:"foreignKey:CreatedBy"`
	AssignedTo  string               `gorm:"type:varchar(36);index"`
	Assignee    *User                `gorm:"foreignKey:AssignedTo"`
	ManagerID   string               `gorm:"type:varchar(36);index"`
	Manager     *User                `gorm:"foreignKey:ManagerID"`
	Status      models.RequestStatus `gorm:"type:varchar(40);index"`
	History     []RequestHistory     `gorm:"foreignKey:RequestID"`
}

// RequestHistory rows are append-only, one per transition plus the
// creation marker. Never updated or deleted.
type RequestHistory struct {
	BaseModel
	RequestID string `gorm:"type:varchar(36);index"`
	UserID    string `gorm:"type:varchar(36)"`
	User      *User  `gorm:"foreignKey:UserID"`
	Action    string `gorm:"type:varchar(40)"`
}
