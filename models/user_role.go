package models

type UserRole string

const (
	UserRoleManager  UserRole = "MANAGER"
	UserRoleEmployee UserRole = "EMPLOYEE"
)

func (r UserRole) IsValid() bool {
	return r == UserRoleManager || r == UserRoleEmployee
}

func (r UserRole) IsManager() bool {
	return r == UserRoleManager
}
