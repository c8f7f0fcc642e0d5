package usecases

import (
	"time"

	"github.com/google/uuid"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/repositories"
	"github.com/mantelbuddy/mantelbuddy-api/internal/scoring"
)

// CheckinResult is the outcome of one monthly check-in, with the score delta
// against the previous check-in when there is one.
type CheckinResult struct {
	TestResultID  uuid.UUID    `json:"test_result_id"`
	TotalScore    float64      `json:"total_score"`
	TierLevel     scoring.Tier `json:"tier_level"`
	PreviousScore *float64     `json:"previous_score,omitempty"`
	Delta         *float64     `json:"delta,omitempty"`
	CompletedAt   time.Time    `json:"completed_at"`
}

type CheckinUseCase interface {
	Submit(caregiverID uuid.UUID, sub BalanstestSubmission) (*CheckinResult, error)
	Trend(caregiverID uuid.UUID) ([]TrendPoint, error)
}

type checkinUseCase struct {
	vragen     VraagUseCase
	resultRepo repositories.TestResultRepository
	caregivers repositories.CaregiverRepository
}

func NewCheckinUseCase(vragen VraagUseCase, resultRepo repositories.TestResultRepository, caregivers repositories.CaregiverRepository) CheckinUseCase {
	return &checkinUseCase{vragen, resultRepo, caregivers}
}

func (uc *checkinUseCase) Submit(caregiverID uuid.UUID, sub BalanstestSubmission) (*CheckinResult, error) {
	caregiver, err := uc.caregivers.GetByID(caregiverID)
	if err != nil {
		return nil, err
	}
	if caregiver == nil {
		return nil, ErrNietGevonden
	}

	catalog, err := uc.vragen.GetVragen(entities.QuestionnaireCheckin)
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

	previous, err := uc.resultRepo.GetLatest(caregiverID, entities.QuestionnaireCheckin)
	if err != nil {
		return nil, err
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
		CaregiverID:       caregiverID,
		QuestionnaireType: entities.QuestionnaireCheckin,
		TotalScore:        totalScore,
		TierLevel:         string(tier),
		CompletedAt:       time.Now(),
		Answers:           answers,
	}
	if err := uc.resultRepo.Create(result); err != nil {
		return nil, err
	}

	out := &CheckinResult{
		TestResultID: result.ID,
		TotalScore:   totalScore,
		TierLevel:    tier,
		CompletedAt:  result.CompletedAt,
	}
	if previous != nil {
		prev := previous.TotalScore
		delta := totalScore - prev
		out.PreviousScore = &prev
		out.Delta = &delta
	}

	return out, nil
}

func (uc *checkinUseCase) Trend(caregiverID uuid.UUID) ([]TrendPoint, error) {
	history, err := uc.resultRepo.GetHistory(caregiverID, entities.QuestionnaireCheckin, 12)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrNietGevonden
	}

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
