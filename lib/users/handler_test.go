package usershandler

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"approval-flow-backend/db"
	usersstore "approval-flow-backend/lib/users/store"
	"approval-flow-backend/models"
	dbmodels "approval-flow-backend/models/db"
)

func setupTest(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	db.DB = gdb
	require.NoError(t, db.AutoMigrateDB())
	NewHandler()
}

func TestDirectoryListings(t *testing.T) {
	setupTest(t)
	store := usersstore.NewInstance(db.DB)

	mgrID, err := store.Create(dbmodels.User{Name: "Bob", Email: "bob@example.com", Role: models.UserRoleManager})
	require.NoError(t, err)
	_, err = store.Create(dbmodels.User{Name: "Alice", Email: "alice@example.com", Role: models.UserRoleManager})
	require.NoError(t, err)
	_, err = store.Create(dbmodels.User{Name: "Carol", Email: "carol@example.com", Role: models.UserRoleEmployee, ManagerID: &mgrID})
	require.NoError(t, err)

	t.Run("managers only, sorted by name", func(t *testing.T) {
		list, err := Instance.ListManagers()
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Alice", list[0].Name)
		require.Equal(t, "Bob", list[1].Name)
		for _, view := range list {
			require.Equal(t, models.UserRoleManager, view.Role)
		}
	})

	t.Run("employees carry their manager id", func(t *testing.T) {
		list, err := Instance.ListEmployees()
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Carol", list[0].Name)
		require.Equal(t, mgrID, list[0].ManagerID)
	})
}
