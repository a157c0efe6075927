package requesthistorystore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "approval-flow-backend/models/db"
)

type Provider interface {
	Append(requestID, userID, action string) (id string, err error)
	ListByRequest(requestID string) (list []dbmodels.RequestHistory, err error)
	CountByRequest(requestID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Append(requestID, userID, action string) (id string, err error) {
	rec := dbmodels.RequestHistory{
		RequestID: requestID,
		UserID:    userID,
		Action:    action,
	}
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// ListByRequest returns entries in append order.
func (i impl) ListByRequest(requestID string) (list []dbmodels.RequestHistory, err error) {
	list = []dbmodels.RequestHistory{}
	err = i.db.
		Where("request_id = ?", requestID).
		Preload("User").
		Order("created_at asc").
		Order("id asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountByRequest(requestID string) (count int64, err error) {
	err = i.db.Model(&dbmodels.RequestHistory{}).
		Where("request_id = ?", requestID).
		Count(&count).
		Error
	return count, err
}
