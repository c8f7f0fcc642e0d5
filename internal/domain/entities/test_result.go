package entities

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty levels for a care task. The WhatsApp flow collects nee/soms/ja,
// the web flow collects the four-level scale. Both are stored as-is.
const (
	DifficultyNee          = "nee"
	DifficultySoms         = "soms"
	DifficultyJa           = "ja"
	DifficultyMakkelijk    = "makkelijk"
	DifficultyGemiddeld    = "gemiddeld"
	DifficultyMoeilijk     = "moeilijk"
	DifficultyZeerMoeilijk = "zeer_moeilijk"
)

// TestResult is one completed questionnaire instance: all answers plus the
// care-task selections, with the derived totals frozen at submission time.
type TestResult struct {
	ID                    uuid.UUID         `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	CaregiverID           uuid.UUID         `json:"caregiver_id" gorm:"column:caregiver_id;type:uuid;index"`
	QuestionnaireType     QuestionnaireType `json:"questionnaire_type" gorm:"column:questionnaire_type"`
	TotalScore            float64           `json:"total_score" gorm:"column:total_score"`
	TierLevel             string            `json:"tier_level" gorm:"column:tier_level"`
	TotalCareHoursPerWeek float64           `json:"total_care_hours_per_week" gorm:"column:total_care_hours_per_week"`
	CompletedAt           time.Time         `json:"completed_at" gorm:"column:completed_at;index"`

	// Relaties
	Answers        []Answer        `json:"answers,omitempty" gorm:"foreignKey:TestResultID"`
	TaskSelections []TaskSelection `json:"task_selections,omitempty" gorm:"foreignKey:TestResultID"`
}

// Answer is one answered question inside a TestResult. Immutable after
// submission. Score is the derived weighted-base point, not the weighted value.
type Answer struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	TestResultID uuid.UUID `json:"test_result_id" gorm:"column:test_result_id;type:uuid;index"`
	QuestionID   string    `json:"question_id" gorm:"column:question_id"`
	Value        string    `json:"value" gorm:"column:value"`
	Score        int       `json:"score" gorm:"column:score"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

// TaskSelection records one care task the user performs, with the weekly hours
// band midpoint and the reported difficulty.
type TaskSelection struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	TestResultID uuid.UUID `json:"test_result_id" gorm:"column:test_result_id;type:uuid;index"`
	TaskID       string    `json:"task_id" gorm:"column:task_id"`
	IsSelected   bool      `json:"is_selected" gorm:"column:is_selected"`
	HoursPerWeek float64   `json:"hours_per_week" gorm:"column:hours_per_week"`
	Difficulty   string    `json:"difficulty" gorm:"column:difficulty"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}
