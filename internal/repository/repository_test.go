package repository_test

import (
	"testing"

	"newscheck/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.News{},
		&models.Vote{},
		&models.Comment{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		Email:     email,
		Password:  "not-a-real-hash",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createNews(t *testing.T, db *gorm.DB, reporterID, topic string) *models.News {
	t.Helper()

	news := &models.News{
		Topic:       topic,
		ShortDetail: "short detail about " + topic,
		FullDetail:  "full detail about " + topic,
		Status:      models.StatusUnknown,
		Visibility:  models.VisibilityActive,
		ReporterID:  reporterID,
	}
	require.NoError(t, db.Create(news).Error)
	return news
}
