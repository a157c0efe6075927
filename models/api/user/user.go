package userapimodels

import (
	"approval-flow-backend/models"
	dbmodels "approval-flow-backend/models/db"
)

type UserView struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
	ManagerID string          `json:"manager_id,omitempty"`
}

func UserConvert(rec dbmodels.User) UserView {
	view := UserView{
		ID:   rec.ID,
		Name: rec.Name,
		Role: rec.Role,
	}
	if rec.ManagerID != nil {
		view.ManagerID = *rec.ManagerID
	}
	return view
}
