package usecases

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/repositories"
	"github.com/mantelbuddy/mantelbuddy-api/internal/resolver"
	"github.com/mantelbuddy/mantelbuddy-api/internal/scoring"
)

// HourBand is one of the six fixed weekly-hours options. The stored value is
// the band's representative midpoint, not the raw label.
type HourBand struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// HourBands in menu order; option numbers are 1-based.
var HourBands = []HourBand{
	{Label: "0-2 uur", Hours: 1},
	{Label: "2-4 uur", Hours: 3},
	{Label: "4-8 uur", Hours: 6},
	{Label: "8-16 uur", Hours: 12},
	{Label: "16-24 uur", Hours: 20},
	{Label: "meer dan 24 uur", Hours: 30},
}

// HoursForBand maps a 1-based band option to its representative hours.
func HoursForBand(option int) (float64, bool) {
	if option < 1 || option > len(HourBands) {
		return 0, false
	}
	return HourBands[option-1].Hours, true
}

// AnswerValue holds a submitted answer value. Single-choice questions send a
// plain string; multi-select questions send a list of option ids, stored
// comma-joined.
type AnswerValue string

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*v = AnswerValue(single)
		return nil
	}

	var options []string
	if err := json.Unmarshal(data, &options); err != nil {
		return err
	}
	*v = AnswerValue(strings.Join(options, ","))
	return nil
}

// AnswerSubmission is one submitted answer.
type AnswerSubmission struct {
	QuestionID string      `json:"question_id" validate:"required"`
	Value      AnswerValue `json:"value" validate:"required"`
}

// TaskSubmission is one selected care task with its collected details.
type TaskSubmission struct {
	TaskID       string  `json:"task_id" validate:"required"`
	HoursPerWeek float64 `json:"hours_per_week" validate:"gte=0"`
	Difficulty   string  `json:"difficulty"`
}

// BalanstestSubmission is a complete balanstest as submitted by either
// channel.
type BalanstestSubmission struct {
	Answers []AnswerSubmission `json:"answers" validate:"required,min=1,dive"`
	Tasks   []TaskSubmission   `json:"tasks" validate:"dive"`
}

// Rapport is the rendered outcome of a balanstest: totals, deelgebieden and
// the personalized annotations.
type Rapport struct {
	TestResultID          uuid.UUID               `json:"test_result_id"`
	CaregiverID           uuid.UUID               `json:"caregiver_id"`
	TotalScore            float64                 `json:"total_score"`
	TierLevel             scoring.Tier            `json:"tier_level"`
	TotalCareHoursPerWeek float64                 `json:"total_care_hours_per_week"`
	Deelgebieden          []scoring.Deelgebied    `json:"deelgebieden"`
	Hulpbronnen           []entities.HelpResource `json:"hulpbronnen"`
	TaakAdviezen          map[string]string       `json:"taak_adviezen"`
	CompletedAt           time.Time               `json:"completed_at"`
}

// TrendPoint is one historical score for the trend view.
type TrendPoint struct {
	CompletedAt time.Time    `json:"completed_at"`
	TotalScore  float64      `json:"total_score"`
	TierLevel   scoring.Tier `json:"tier_level"`
}

type BalanstestUseCase interface {
	// SubmitByPhone scores and persists a balanstest for the caregiver behind
	// a phone number, creating the caregiver on first contact (WhatsApp).
	SubmitByPhone(phone string, sub BalanstestSubmission) (*Rapport, error)
	// Submit scores and persists a balanstest for a known caregiver (web).
	Submit(caregiverID uuid.UUID, sub BalanstestSubmission) (*Rapport, error)
	// Laatste rebuilds the rapport from the most recent stored result.
	Laatste(caregiverID uuid.UUID) (*Rapport, error)
	// Trend returns the score history, oldest first.
	Trend(caregiverID uuid.UUID) ([]TrendPoint, error)
}

type balanstestUseCase struct {
	vragen     VraagUseCase
	resultRepo repositories.TestResultRepository
	caregivers repositories.CaregiverRepository
	hulp       HulpbronUseCase
	advies     AdviesUseCase
}

func NewBalanstestUseCase(
	vragen VraagUseCase,
	resultRepo repositories.TestResultRepository,
	caregivers repositories.CaregiverRepository,
	hulp HulpbronUseCase,
	advies AdviesUseCase,
) BalanstestUseCase {
	return &balanstestUseCase{vragen, resultRepo, caregivers, hulp, advies}
}

func (uc *balanstestUseCase) SubmitByPhone(phone string, sub BalanstestSubmission) (*Rapport, error) {
	caregiver, err := uc.caregivers.GetOrCreateByPhone(phone)
	if err != nil {
		return nil, err
	}

	return uc.submit(caregiver, sub)
}

func (uc *balanstestUseCase) Submit(caregiverID uuid.UUID, sub BalanstestSubmission) (*Rapport, error) {
	caregiver, err := uc.caregivers.GetByID(caregiverID)
	if err != nil {
		return nil, err
	}
	if caregiver == nil {
		return nil, ErrNietGevonden
	}

	return uc.submit(caregiver, sub)
}

func (uc *balanstestUseCase) submit(caregiver *entities.Caregiver, sub BalanstestSubmission) (*Rapport, error) {
	catalog, err := uc.vragen.GetVragen(entities.QuestionnaireBalanstest)
	if err != nil {
		return nil, err
	}

	inputs := make([]scoring.AnswerInput, 0, len(sub.Answers))
	for _, a := range sub.Answers {
		inputs = append(inputs, scoring.AnswerInput{QuestionID: a.QuestionID, Value: string(a.Value)})
	}
	scored := scoring.ScoreAnswers(inputs, catalog)
	totalScore := scoring.ComputeScore(scored)
	tier := scoring.TierForScore(totalScore)

	var totalHours float64
	selections := make([]entities.TaskSelection, 0, len(sub.Tasks))
	for _, t := range sub.Tasks {
		totalHours += t.HoursPerWeek
		selections = append(selections, entities.TaskSelection{
			TaskID:       t.TaskID,
			IsSelected:   true,
			HoursPerWeek: t.HoursPerWeek,
			Difficulty:   t.Difficulty,
		})
	}

	answers := make([]entities.Answer, 0, len(scored))
	for _, a := range scored {
		answers = append(answers, entities.Answer{
			QuestionID: a.QuestionID,
			Value:      a.Value,
			Score:      a.Points,
		})
	}

	result := &entities.TestResult{
		CaregiverID:           caregiver.ID,
		QuestionnaireType:     entities.QuestionnaireBalanstest,
		TotalScore:            totalScore,
		TierLevel:             string(tier),
		TotalCareHoursPerWeek: totalHours,
		CompletedAt:           time.Now(),
		Answers:               answers,
		TaskSelections:        selections,
	}
	if err := uc.resultRepo.Create(result); err != nil {
		return nil, err
	}

	return uc.buildRapport(caregiver, result, scored, catalog)
}

func (uc *balanstestUseCase) Laatste(caregiverID uuid.UUID) (*Rapport, error) {
	caregiver, err := uc.caregivers.GetByID(caregiverID)
	if err != nil {
		return nil, err
	}
	if caregiver == nil {
		return nil, ErrNietGevonden
	}

	result, err := uc.resultRepo.GetLatest(caregiverID, entities.QuestionnaireBalanstest)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrNietGevonden
	}

	catalog, err := uc.vragen.GetVragen(entities.QuestionnaireBalanstest)
	if err != nil {
		return nil, err
	}

	inputs := make([]scoring.AnswerInput, 0, len(result.Answers))
	for _, a := range result.Answers {
		inputs = append(inputs, scoring.AnswerInput{QuestionID: a.QuestionID, Value: a.Value})
	}
	scored := scoring.ScoreAnswers(inputs, catalog)

	return uc.buildRapport(caregiver, result, scored, catalog)
}

func (uc *balanstestUseCase) Trend(caregiverID uuid.UUID) ([]TrendPoint, error) {
	history, err := uc.resultRepo.GetHistory(caregiverID, entities.QuestionnaireBalanstest, 12)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrNietGevonden
	}

	// History comes newest first; the trend reads oldest first.
	points := make([]TrendPoint, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		r := history[i]
		points = append(points, TrendPoint{
			CompletedAt: r.CompletedAt,
			TotalScore:  r.TotalScore,
			TierLevel:   scoring.Tier(r.TierLevel),
		})
	}

	return points, nil
}

func (uc *balanstestUseCase) buildRapport(caregiver *entities.Caregiver, result *entities.TestResult, scored []scoring.ScoredAnswer, catalog []entities.Question) (*Rapport, error) {
	deelgebieden := scoring.ComputeDeelgebieden(scored, catalog, uc.advies)
	tier := scoring.Tier(result.TierLevel)

	resources, err := uc.hulp.Zoek(resolver.Query{
		Municipality: caregiver.Municipality,
		Tier:         tier,
	})
	if err != nil {
		return nil, err
	}

	taakAdviezen := make(map[string]string, len(result.TaskSelections))
	for _, sel := range result.TaskSelections {
		if sel.IsSelected {
			taakAdviezen[sel.TaskID] = uc.advies.TaakAdvies(sel.TaskID)
		}
	}

	return &Rapport{
		TestResultID:          result.ID,
		CaregiverID:           caregiver.ID,
		TotalScore:            result.TotalScore,
		TierLevel:             tier,
		TotalCareHoursPerWeek: result.TotalCareHoursPerWeek,
		Deelgebieden:          deelgebieden,
		Hulpbronnen:           resources,
		TaakAdviezen:          taakAdviezen,
		CompletedAt:           result.CompletedAt,
	}, nil
}
