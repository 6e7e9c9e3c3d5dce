package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"construction-dashboard-api/internal/domain"
)

// setupTestDB creates an in-memory SQLite database. SQLite has no
// gen_random_uuid(), so primary keys are filled in by a create callback.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	db.Callback().Create().Before("gorm:create").Register("generate_uuid", func(db *gorm.DB) {
		if db.Statement.Schema != nil {
			for _, field := range db.Statement.Schema.PrimaryFields {
				if field.DataType == "uuid" {
					fieldValue := field.ReflectValueOf(db.Statement.Context, db.Statement.ReflectValue)
					if fieldValue.IsZero() {
						field.Set(db.Statement.Context, db.Statement.ReflectValue, uuid.New())
					}
				}
			}
		}
	})

	models := []any{
		&domain.Project{},
		&domain.SchedulePhase{},
		&domain.Activity{},
		&domain.Milestone{},
		&domain.CalendarEvent{},
		&domain.ProjectFile{},
		&domain.DailyNote{},
	}

	// SQLite also rejects the Postgres-only DEFAULT gen_random_uuid() in
	// CREATE TABLE DDL; strip it from the cached schemas before migrating.
	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		require.NoError(t, stmt.Parse(model))
		for _, field := range stmt.Schema.Fields {
			if field.DefaultValue == "gen_random_uuid()" {
				field.DefaultValue = ""
				field.HasDefaultValue = false
			}
		}
	}

	require.NoError(t, db.AutoMigrate(models...))
	return db
}

func createTestProject(t *testing.T, db *gorm.DB) *domain.Project {
	t.Helper()
	project := &domain.Project{
		Title:     "Riverside Apartments",
		Status:    domain.ProjectStatusInProgress,
		ManagerID: uuid.New(),
		ClientID:  uuid.New(),
	}
	require.NoError(t, db.Create(project).Error)
	return project
}
