// database/migration.go
package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/tszwong/notizen-api/domain/models"
)

// RunMigration migrates all models to the database. Order matters: parent
// tables first, then tables carrying foreign keys.
func RunMigration(db *gorm.DB) error {
	log.Println("Running auto migration...")

	err := db.AutoMigrate(
		// parent tables (no FK to anything else)
		&models.User{},

		// user-owned tables
		&models.Note{},
		&models.TodoList{},
		&models.Tag{},
		&models.UserStat{},
		&models.ActivityRecord{},
		&models.PomodoroSession{},
		&models.Attachment{},
	)
	if err != nil {
		return err
	}

	log.Println("Auto migration finished")
	return nil
}

// SetupDatabase enables required extensions and runs the migration.
func SetupDatabase(db *gorm.DB) error {
	// uuid_generate_v4 defaults on primary keys need uuid-ossp.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return RunMigration(db)
}
