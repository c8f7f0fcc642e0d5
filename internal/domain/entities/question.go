package entities

import (
	"time"
)

// QuestionnaireType identifies which questionnaire a question belongs to.
type QuestionnaireType string

const (
	QuestionnaireBalanstest QuestionnaireType = "balanstest"
	QuestionnaireCheckin    QuestionnaireType = "checkin"
)

// Sections of the balanstest. Every balanstest question belongs to exactly one.
const (
	SectionEnergie = "energie"
	SectionGevoel  = "gevoel"
	SectionTijd    = "tijd"
)

// Question is a catalog entry for one questionnaire question. The catalog is
// seeded at startup and only changed through seeding, never by end users.
type Question struct {
	ID                string            `json:"id" gorm:"primaryKey;column:id"`
	QuestionnaireType QuestionnaireType `json:"questionnaire_type" gorm:"column:questionnaire_type;index"`
	Section           string            `json:"section" gorm:"column:section"`
	Text              string            `json:"text" gorm:"column:text;type:text"`
	Tip               string            `json:"tip" gorm:"column:tip;type:text"`
	Weight            float64           `json:"weight" gorm:"column:weight;default:1.0"`
	Order             int               `json:"order" gorm:"column:sort_order"`
	Reversed          bool              `json:"reversed" gorm:"column:reversed"`
	IsMultiSelect     bool              `json:"is_multi_select" gorm:"column:is_multi_select"`
	CreatedAt         time.Time         `json:"created_at" gorm:"column:created_at"`
	UpdatedAt         time.Time         `json:"updated_at" gorm:"column:updated_at"`
}
