package scoring

import (
	"github.com/sirupsen/logrus"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

// Tier is the three-level burden classification derived from a score.
type Tier string

const (
	TierLaag      Tier = "laag"
	TierGemiddeld Tier = "gemiddeld"
	TierHoog      Tier = "hoog"
)

// Canonical answer values. The normalizer maps channel-specific input
// (English synonyms, numbered menu choices) onto these before scoring.
const (
	ValueJa   = "ja"
	ValueSoms = "soms"
	ValueNee  = "nee"
)

// Tier thresholds for the balanstest total score, against a max of 24.
// The source system shipped two diverging tables; this one, used by the
// user-facing report, is the canonical one everywhere.
const (
	tierLaagMax      = 6.0
	tierGemiddeldMax = 12.0
)

// AnswerInput is one raw (questionId, value) pair as received from a channel.
type AnswerInput struct {
	QuestionID string
	Value      string
}

// PointsFor maps an answer value to its base points: ja=2, soms=1, nee=0.
// Unknown values count as nee; the caller is expected to have normalized
// input, so an unknown here is a data-quality problem, not a user error.
func PointsFor(value string) int {
	switch value {
	case ValueJa:
		return 2
	case ValueSoms:
		return 1
	case ValueNee:
		return 0
	default:
		logrus.WithField("value", value).Warn("onbekende antwoordwaarde, geteld als nee")
		return 0
	}
}

// ScoredAnswer is an answer with its per-question points resolved against the
// catalog (reversal applied, weight not yet applied).
type ScoredAnswer struct {
	QuestionID string
	Value      string
	Points     int
	Weight     float64
}

// ScoreAnswers resolves raw answers against the question catalog. Answers for
// unknown question ids are dropped with a warning. Reversed questions invert
// the base points (2 becomes 0, 0 becomes 2) before weighting. Multi-select
// questions carry no score.
func ScoreAnswers(answers []AnswerInput, catalog []entities.Question) []ScoredAnswer {
	byID := make(map[string]entities.Question, len(catalog))
	for _, q := range catalog {
		byID[q.ID] = q
	}

	scored := make([]ScoredAnswer, 0, len(answers))
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			logrus.WithField("question_id", a.QuestionID).Warn("antwoord op onbekende vraag genegeerd")
			continue
		}
		points := 0
		if !q.IsMultiSelect {
			points = PointsFor(a.Value)
			if q.Reversed {
				points = 2 - points
			}
		}
		scored = append(scored, ScoredAnswer{
			QuestionID: a.QuestionID,
			Value:      a.Value,
			Points:     points,
			Weight:     q.Weight,
		})
	}
	return scored
}

// ComputeScore sums the weighted points of all scored answers. A partial
// answer set simply yields a lower score; completeness is the caller's
// concern.
func ComputeScore(scored []ScoredAnswer) float64 {
	var total float64
	for _, a := range scored {
		total += float64(a.Points) * a.Weight
	}
	return total
}

// TierForScore buckets a total score into the three tiers. Monotonic in score.
func TierForScore(score float64) Tier {
	switch {
	case score <= tierLaagMax:
		return TierLaag
	case score <= tierGemiddeldMax:
		return TierGemiddeld
	default:
		return TierHoog
	}
}
