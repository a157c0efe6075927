package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "approval-flow-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration error for User")
	}
	if err := DB.AutoMigrate(&dbmodels.Request{}); err != nil {
		return errors.Wrap(err, "migration error for Request")
	}
	if err := DB.AutoMigrate(&dbmodels.RequestHistory{}); err != nil {
		return errors.Wrap(err, "migration error for RequestHistory")
	}
	log.Info("migrations finished")
	return nil
}
