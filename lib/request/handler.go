package requesthandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"approval-flow-backend/db"
	requesthistorystore "approval-flow-backend/lib/request/history-store"
	requeststore "approval-flow-backend/lib/request/store"
	usersstore "approval-flow-backend/lib/users/store"
	"approval-flow-backend/models"
	requestapimodels "approval-flow-backend/models/api/request"
	dbmodels "approval-flow-backend/models/db"
)

type Provider interface {
	Create(userID string, data requestapimodels.RequestCreateData) (view requestapimodels.RequestView, err error)
	ApplyAction(requestID string, action models.RequestAction, userID string, role models.UserRole) (view requestapimodels.RequestView, err error)
	GetByID(requestID, userID string, role models.UserRole) (view requestapimodels.RequestView, err error)
	List(userID string, role models.UserRole) (list []requestapimodels.RequestView, err error)
	History(requestID, userID string, role models.UserRole) (list []requestapimodels.RequestHistoryView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        requeststore.NewInstance(db.DB),
		historyStore: requesthistorystore.NewInstance(db.DB),
		userStore:    usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store        requeststore.Provider
	historyStore requesthistorystore.Provider
	userStore    usersstore.Provider
}

func (i impl) Create(userID string, data requestapimodels.RequestCreateData) (requestapimodels.RequestView, error) {
	logger := log.WithField("user_id", userID)
	if err := data.Validate(); err != nil {
		return requestapimodels.RequestView{}, err
	}
	if data.AssignedTo == userID {
		return requestapimodels.RequestView{}, errors.Wrap(models.ErrInvalidInput, "request cannot be assigned to yourself")
	}
	assignee, err := i.userStore.GetByID(data.AssignedTo)
	if err != nil {
		logger.WithError(err).Error("assignee lookup error")
		return requestapimodels.RequestView{}, err
	}
	if assignee == nil {
		return requestapimodels.RequestView{}, errors.Wrap(models.ErrInvalidInput, "assigned user does not exist")
	}
	if assignee.Role != models.UserRoleEmployee {
		return requestapimodels.RequestView{}, errors.Wrap(models.ErrInvalidInput, "requests can only be assigned to employees")
	}
	if !assignee.HasManager() {
		return requestapimodels.RequestView{}, errors.Wrap(models.ErrInvalidInput, "assigned employee has no manager")
	}

	rec := dbmodels.Request{
		Title:       data.Title,
		Description: data.Description,
		CreatedBy:   userID,
		AssignedTo:  data.AssignedTo,
		// the assignee's manager at creation time keeps approval authority
		// even if the employee is moved to another manager later
		ManagerID: *assignee.ManagerID,
		Status:    models.RequestStatusPendingApproval,
	}
	var view requestapimodels.RequestView
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := requeststore.NewInstance(tx)
		historyStore := requesthistorystore.NewInstance(tx)
		id, err := store.Create(rec)
		if err != nil {
			return err
		}
		if _, err = historyStore.Append(id, userID, models.HistoryActionCreated); err != nil {
			return err
		}
		saved, err := store.GetByID(id)
		if err != nil {
			return err
		}
		view = requestapimodels.RequestConvert(*saved)
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("request create error")
		return requestapimodels.RequestView{}, err
	}
	logger.
		WithField("rec_id", view.ID).
		WithField("manager_id", view.ManagerID).
		Info("request created")
	return view, nil
}

func (i impl) ApplyAction(requestID string, action models.RequestAction, userID string, role models.UserRole) (requestapimodels.RequestView, error) {
	logger := log.
		WithField("rec_id", requestID).
		WithField("action", action).
		WithField("user_id", userID)
	rule, ok := action.Rule()
	if !ok {
		return requestapimodels.RequestView{}, errors.Wrapf(models.ErrInvalidInput, "unknown action %q", action)
	}
	var view requestapimodels.RequestView
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := requeststore.NewInstance(tx)
		historyStore := requesthistorystore.NewInstance(tx)
		rec, err := store.GetByID(requestID)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "request not found")
		}
		// ownership is checked before the status precondition, a wrong
		// actor must not learn the current status
		if err = checkActor(rule, *rec, userID, role); err != nil {
			return err
		}
		if rec.Status != rule.From {
			if action == models.RequestActionStart && rec.Status == models.RequestStatusRejected {
				return errors.Wrap(models.ErrRequestRejected, "request cannot be worked on")
			}
			return errors.Wrapf(models.ErrInvalidTransition, "action %s requires status %s, request is %s", action, rule.From, rec.Status)
		}
		updated, err := store.Transition(requestID, rule.From, rule.To)
		if err != nil {
			return err
		}
		if !updated {
			// the row changed between read and CAS, re-read to report the
			// exact reason
			current, err := store.GetByID(requestID)
			if err != nil {
				return err
			}
			if current == nil {
				return errors.Wrap(models.ErrNotFound, "request not found")
			}
			if current.Status != rule.From {
				return errors.Wrapf(models.ErrInvalidTransition, "action %s requires status %s, request is %s", action, rule.From, current.Status)
			}
			return errors.Wrap(models.ErrConflict, "transition lost to a concurrent update")
		}
		if _, err = historyStore.Append(requestID, userID, string(rule.To)); err != nil {
			return err
		}
		current, err := store.GetByID(requestID)
		if err != nil {
			return err
		}
		view = requestapimodels.RequestConvert(*current)
		return nil
	})
	if err != nil {
		logger.WithError(err).Warn("request transition refused")
		return requestapimodels.RequestView{}, err
	}
	logger.WithField("new_status", rule.To).Info("request status changed")
	return view, nil
}

func checkActor(rule models.TransitionRule, rec dbmodels.Request, userID string, role models.UserRole) error {
	if role != rule.Role {
		return errors.Wrapf(models.ErrForbidden, "action requires role %s", rule.Role)
	}
	responsible := rec.ManagerID
	if rule.Role == models.UserRoleEmployee {
		responsible = rec.AssignedTo
	}
	if userID != responsible {
		return errors.Wrap(models.ErrForbidden, "user is not responsible for this request")
	}
	return nil
}

func (i impl) GetByID(requestID, userID string, role models.UserRole) (requestapimodels.RequestView, error) {
	rec, err := i.getVisible(requestID, userID, role)
	if err != nil {
		return requestapimodels.RequestView{}, err
	}
	return requestapimodels.RequestConvert(*rec), nil
}

func (i impl) List(userID string, role models.UserRole) ([]requestapimodels.RequestView, error) {
	var recList []dbmodels.Request
	var err error
	switch role {
	case models.UserRoleManager:
		recList, err = i.store.ListForManager(userID, models.ManagerVisibleStatuses())
	case models.UserRoleEmployee:
		recList, err = i.store.ListForEmployee(userID, models.EmployeeVisibleStatuses())
	default:
		return nil, errors.Wrapf(models.ErrForbidden, "unknown role %q", role)
	}
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("request list error")
		return nil, err
	}
	result := make([]requestapimodels.RequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, requestapimodels.RequestConvert(rec))
	}
	return result, nil
}

func (i impl) History(requestID, userID string, role models.UserRole) ([]requestapimodels.RequestHistoryView, error) {
	if _, err := i.getVisible(requestID, userID, role); err != nil {
		return nil, err
	}
	recList, err := i.historyStore.ListByRequest(requestID)
	if err != nil {
		log.WithError(err).WithField("rec_id", requestID).Error("request history list error")
		return nil, err
	}
	result := make([]requestapimodels.RequestHistoryView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, requestapimodels.RequestHistoryConvert(rec))
	}
	return result, nil
}

// getVisible loads a request and applies the single-fetch visibility rule:
// the manager of record, or an employee who created it or is assigned to
// it. Unlike listings this allows every status.
func (i impl) getVisible(requestID, userID string, role models.UserRole) (*dbmodels.Request, error) {
	rec, err := i.store.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "request not found")
	}
	switch role {
	case models.UserRoleManager:
		if rec.ManagerID != userID {
			return nil, errors.Wrap(models.ErrForbidden, "request belongs to another manager")
		}
	case models.UserRoleEmployee:
		if rec.AssignedTo != userID && rec.CreatedBy != userID {
			return nil, errors.Wrap(models.ErrForbidden, "request belongs to another employee")
		}
	default:
		return nil, errors.Wrapf(models.ErrForbidden, "unknown role %q", role)
	}
	return rec, nil
}
