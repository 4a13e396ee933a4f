package services

import (
	"testing"

	"github.com/earnkit/rewards_backend/database"
	"github.com/earnkit/rewards_backend/models"
	"github.com/earnkit/rewards_backend/utils"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB points the global database handle at a fresh in-memory
// SQLite instance. A single pooled connection keeps the database alive for
// the whole test.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Referral{},
		&models.AllowedPackage{},
		&models.AttemptsConfig{},
		&models.CollaborationRecord{},
	))

	database.DB = db
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
}

func apiCode(t *testing.T, err error) string {
	t.Helper()
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr.Code
}

func loadUser(t *testing.T, uid string) models.User {
	t.Helper()
	var user models.User
	require.NoError(t, database.DB.First(&user, "uid = ?", uid).Error)
	return user
}
