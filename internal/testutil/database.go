// Package testutil provides an isolated in-memory database for package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupTestDB opens a migrated in-memory sqlite database that is closed when
// the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	log := zap.NewNop()
	db, err := database.Connect(config.Database{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	}, log)
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, database.AutoMigrate(db, log), "failed to run migrations")

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// SetupSeededDB is SetupTestDB plus the default categories.
func SetupSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := SetupTestDB(t)
	_, err := database.SeedCategories(context.Background(), db)
	require.NoError(t, err, "failed to seed categories")
	return db
}

// CreateQuestions inserts n questions in category, numbered from 1 in their
// text, and returns them in insertion order.
func CreateQuestions(t *testing.T, db *gorm.DB, category string, n int) []models.Question {
	t.Helper()

	qs := make([]models.Question, n)
	for i := range qs {
		qs[i] = models.Question{
			Question:   fmt.Sprintf("Question %d in category %s?", i+1, category),
			Answer:     fmt.Sprintf("Answer %d", i+1),
			Category:   category,
			Difficulty: i%5 + 1,
		}
	}
	if n > 0 {
		require.NoError(t, db.Create(&qs).Error, "failed to create questions")
	}
	return qs
}

// BreakDB closes the underlying connection so every later query fails like
// a lost storage backend.
func BreakDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, database.Close(db))
}
