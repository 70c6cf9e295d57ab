package catalog

import (
	"testing"

	"carta-backend/internal/database"
	"carta-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Every :memory: connection is a separate database; pin the pool to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createWorkspace(t *testing.T, db *gorm.DB, name string) models.Workspace {
	t.Helper()

	ws := models.Workspace{Name: name, Address: "Calle Falsa 123"}
	require.NoError(t, db.Create(&ws).Error)
	return ws
}
