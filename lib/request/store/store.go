package requeststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"approval-flow-backend/models"
	dbmodels "approval-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Request) (id string, err error)
	GetByID(id string) (rec *dbmodels.Request, err error)
	Transition(id string, expected, next models.RequestStatus) (updated bool, err error)
	ListForManager(managerID string, statuses []models.RequestStatus) (list []dbmodels.Request, err error)
	ListForEmployee(employeeID string, statuses []models.RequestStatus) (list []dbmodels.Request, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Request) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Request, error) {
	rec := dbmodels.Request{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Transition performs a compare-and-swap on the status column. A false
// result means the row no longer holds the expected status (or is gone),
// the caller re-reads to tell those cases apart.
func (i impl) Transition(id string, expected, next models.RequestStatus) (updated bool, err error) {
	tx := i.db.
		Model(&dbmodels.Request{}).
		Where("id = ?", id).
		Where("status = ?", expected).
		Update("status", next)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) ListForManager(managerID string, statuses []models.RequestStatus) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	err = i.db.
		Where("manager_id = ?", managerID).
		Where("status IN ?", statuses).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListForEmployee(employeeID string, statuses []models.RequestStatus) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	err = i.db.
		Where("assigned_to = ?", employeeID).
		Where("status IN ?", statuses).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
