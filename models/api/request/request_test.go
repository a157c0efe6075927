package requestapimodels

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"approval-flow-backend/models"
	dbmodels "approval-flow-backend/models/db"
)

func TestRequestCreateDataValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		data := RequestCreateData{Title: "T", Description: "D", AssignedTo: "emp-1"}
		require.NoError(t, data.Validate())
	})

	t.Run("lists every missing field", func(t *testing.T) {
		err := RequestCreateData{}.Validate()
		require.True(t, errors.Is(err, models.ErrInvalidInput))
		require.Contains(t, err.Error(), "title")
		require.Contains(t, err.Error(), "description")
		require.Contains(t, err.Error(), "assigned_to")
	})
}

func TestRequestHistoryConvert(t *testing.T) {
	t.Run("takes the author name when preloaded", func(t *testing.T) {
		view := RequestHistoryConvert(dbmodels.RequestHistory{
			RequestID: "req-1",
			UserID:    "user-1",
			User:      &dbmodels.User{Name: "Alice"},
			Action:    models.HistoryActionCreated,
		})
		require.Equal(t, "Alice", view.UserName)
		require.Equal(t, models.HistoryActionCreated, view.Action)
	})

	t.Run("tolerates a missing author record", func(t *testing.T) {
		view := RequestHistoryConvert(dbmodels.RequestHistory{
			RequestID: "req-1",
			UserID:    "user-1",
			Action:    string(models.RequestStatusApproved),
		})
		require.Empty(t, view.UserName)
	})
}
