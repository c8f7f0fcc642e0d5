package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/utils"
)

type TestResultRepository interface {
	// Create persists the result together with its answers and task
	// selections in one transaction.
	Create(result *entities.TestResult) error
	GetLatest(caregiverID uuid.UUID, questionnaireType entities.QuestionnaireType) (*entities.TestResult, error)
	GetHistory(caregiverID uuid.UUID, questionnaireType entities.QuestionnaireType, limit int) ([]entities.TestResult, error)
}

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db}
}

func (r *testResultRepository) Create(result *entities.TestResult) error {
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	for i := range result.Answers {
		if result.Answers[i].ID == uuid.Nil {
			result.Answers[i].ID = uuid.New()
		}
		result.Answers[i].TestResultID = result.ID
	}
	for i := range result.TaskSelections {
		if result.TaskSelections[i].ID == uuid.Nil {
			result.TaskSelections[i].ID = uuid.New()
		}
		result.TaskSelections[i].TestResultID = result.ID
	}

	if err := r.db.Create(result).Error; err != nil {
		return fmt.Errorf("testresultaat opslaan mislukt: %w", err)
	}

	return nil
}

func (r *testResultRepository) GetLatest(caregiverID uuid.UUID, questionnaireType entities.QuestionnaireType) (*entities.TestResult, error) {
	var results []entities.TestResult

	err := r.db.
		Preload("Answers").
		Preload("TaskSelections").
		Where("caregiver_id = ? AND questionnaire_type = ?", caregiverID, questionnaireType).
		Order("completed_at desc").
		Limit(1).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("laatste testresultaat ophalen mislukt: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	results[0].CompletedAt = results[0].CompletedAt.In(utils.GetNederlandLocation())
	return &results[0], nil
}

func (r *testResultRepository) GetHistory(caregiverID uuid.UUID, questionnaireType entities.QuestionnaireType, limit int) ([]entities.TestResult, error) {
	var results []entities.TestResult

	if limit <= 0 {
		limit = 12
	}

	err := r.db.
		Where("caregiver_id = ? AND questionnaire_type = ?", caregiverID, questionnaireType).
		Order("completed_at desc").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("testhistorie ophalen mislukt: %w", err)
	}

	// Render timestamps in Dutch local time.
	nl := utils.GetNederlandLocation()
	for i := range results {
		results[i].CompletedAt = results[i].CompletedAt.In(nl)
	}

	return results, nil
}
