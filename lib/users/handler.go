package usershandler

import (
	log "github.com/sirupsen/logrus"

	"approval-flow-backend/db"
	usersstore "approval-flow-backend/lib/users/store"
	"approval-flow-backend/models"
	userapimodels "approval-flow-backend/models/api/user"
)

type Provider interface {
	ListManagers() (list []userapimodels.UserView, err error)
	ListEmployees() (list []userapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) ListManagers() ([]userapimodels.UserView, error) {
	return i.listByRole(models.UserRoleManager)
}

func (i impl) ListEmployees() ([]userapimodels.UserView, error) {
	return i.listByRole(models.UserRoleEmployee)
}

func (i impl) listByRole(role models.UserRole) ([]userapimodels.UserView, error) {
	recList, err := i.store.ListByRole(role)
	if err != nil {
		log.WithError(err).WithField("role", role).Error("user list error")
		return nil, err
	}
	result := make([]userapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, userapimodels.UserConvert(rec))
	}
	return result, nil
}
