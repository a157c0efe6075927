package requestapimodels

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"approval-flow-backend/models"
	dbmodels "approval-flow-backend/models/db"
)

type RequestCreateData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
}

func (d RequestCreateData) Validate() error {
	missing := []string{}
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if d.Description == "" {
		missing = append(missing, "description")
	}
	if d.AssignedTo == "" {
		missing = append(missing, "assigned_to")
	}
	if len(missing) > 0 {
		return errors.Wrap(models.ErrInvalidInput, fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}
	return nil
}

type RequestView struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	CreatedBy   string               `json:"created_by"`
	AssignedTo  string               `json:"assigned_to"`
	ManagerID   string               `json:"manager_id"`
	Status      models.RequestStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func RequestConvert(rec dbmodels.Request) RequestView {
	return RequestView{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		CreatedBy:   rec.CreatedBy,
		AssignedTo:  rec.AssignedTo,
		ManagerID:   rec.ManagerID,
		Status:      rec.Status,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

type RequestHistoryView struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Action    string    `json:"action"`
	Date      time.Time `json:"date"`
}

func RequestHistoryConvert(rec dbmodels.RequestHistory) RequestHistoryView {
	view := RequestHistoryView{
		ID:        rec.ID,
		RequestID: rec.RequestID,
		UserID:    rec.UserID,
		Action:    rec.Action,
		Date:      rec.CreatedAt,
	}
	if rec.User != nil {
		view.UserName = rec.User.Name
	}
	return view
}
