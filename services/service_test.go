package services

import (
	"testing"

	"quizbuilder/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with foreign keys enforced,
// which is what the Postgres schema relies on for parent-id validation.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A second connection would get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Answer{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user, err := NewUserService(db).CreateUser(&CreateUserRequest{
		Email: "author@example.com",
		Name:  "Author",
	})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
