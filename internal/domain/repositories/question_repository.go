package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

type QuestionRepository interface {
	GetQuestions(questionnaireType entities.QuestionnaireType) ([]entities.Question, error)
	UpsertQuestions(questions []entities.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db}
}

func (r *questionRepository) GetQuestions(questionnaireType entities.QuestionnaireType) ([]entities.Question, error) {
	var questions []entities.Question

	err := r.db.
		Where("questionnaire_type = ?", questionnaireType).
		Order("sort_order asc").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("vragen ophalen mislukt: %w", err)
	}

	return questions, nil
}

// UpsertQuestions writes catalog rows keyed by their natural id. Re-running
// with identical data changes nothing, so seeding is idempotent.
func (r *questionRepository) UpsertQuestions(questions []entities.Question) error {
	if len(questions) == 0 {
		return nil
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"questionnaire_type", "section", "text", "tip", "weight",
			"sort_order", "reversed", "is_multi_select", "updated_at",
		}),
	}).Create(&questions).Error
	if err != nil {
		return fmt.Errorf("vragencatalogus bijwerken mislukt: %w", err)
	}

	return nil
}
