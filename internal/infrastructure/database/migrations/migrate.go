package migrations

import (
	"gorm.io/gorm"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Question{},
		&entities.CareTask{},
		&entities.Caregiver{},
		&entities.TestResult{},
		&entities.Answer{},
		&entities.TaskSelection{},
		&entities.HelpResource{},
		&entities.Advice{},
		&entities.Article{},
		&entities.Gemeente{},
		&entities.Alarm{},
	)
}
