package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Test results: the report and trend queries filter by caregiver and
	// order by completion time.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_test_results_caregiver_completed ON test_results (caregiver_id, completed_at DESC)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_test_results_type ON test_results (questionnaire_type)").Error; err != nil {
		return err
	}

	// Answers and selections are always loaded by their owning result.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_answers_test_result_id ON answers (test_result_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_task_selections_test_result_id ON task_selections (test_result_id)").Error; err != nil {
		return err
	}

	// Resolver candidate fetch.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_help_resources_active ON help_resources (is_active)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_help_resources_municipality ON help_resources (municipality)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_help_resources_category ON help_resources (category)").Error; err != nil {
		return err
	}

	// Article keyword search hits active rows ordered by publish date.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_articles_active_published ON articles (is_active, published_at DESC)").Error; err != nil {
		return err
	}

	return nil
}
