package authapimodels

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"approval-flow-backend/models"
)

func TestSignUpDataValidate(t *testing.T) {
	valid := SignUpData{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret-1",
		Role:     models.UserRoleManager,
	}

	t.Run("valid manager", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("lists every missing field", func(t *testing.T) {
		err := SignUpData{}.Validate()
		require.True(t, errors.Is(err, models.ErrInvalidInput))
		require.Contains(t, err.Error(), "name")
		require.Contains(t, err.Error(), "email")
		require.Contains(t, err.Error(), "password")
		require.Contains(t, err.Error(), "role")
	})

	t.Run("bad email", func(t *testing.T) {
		data := valid
		data.Email = "not-an-email"
		require.True(t, errors.Is(data.Validate(), models.ErrInvalidInput))
	})

	t.Run("unknown role", func(t *testing.T) {
		data := valid
		data.Role = "INTERN"
		require.True(t, errors.Is(data.Validate(), models.ErrInvalidInput))
	})

	t.Run("employee needs a manager", func(t *testing.T) {
		data := valid
		data.Role = models.UserRoleEmployee
		require.True(t, errors.Is(data.Validate(), models.ErrInvalidInput))

		data.ManagerID = "mgr-1"
		require.NoError(t, data.Validate())
	})

	t.Run("short password", func(t *testing.T) {
		data := valid
		data.Password = "abc"
		require.True(t, errors.Is(data.Validate(), models.ErrInvalidInput))
	})
}
