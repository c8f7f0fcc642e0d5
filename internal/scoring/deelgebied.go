package scoring

import (
	"math"
	"sort"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

// Deelgebied is a derived sub-domain aggregate. It is recomputed from the
// answers on every read and never persisted, so it cannot drift from the
// underlying data.
type Deelgebied struct {
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	Percentage int     `json:"percentage"`
	TierLevel  Tier    `json:"tier_level"`
	Tip        string  `json:"tip"`
}

// Percentage bands for per-deelgebied tiers: below 34% laag, below 67%
// gemiddeld, otherwise hoog.
const (
	deelgebiedLaagBelow      = 34
	deelgebiedGemiddeldBelow = 67
)

// TipResolver resolves an advisory tip for a deelgebied at a tier. The advice
// lookup implements this; a nil resolver falls back to the catalog tip only.
type TipResolver interface {
	TipFor(deelgebied string, tier Tier) (string, bool)
}

// ComputeDeelgebieden groups the scored answers by the catalog section and
// computes per-section score, max score, percentage and tier. Sections with
// no scoreable questions are omitted. Result is ordered by the lowest
// question order within each section, so the report follows the catalog.
func ComputeDeelgebieden(scored []ScoredAnswer, catalog []entities.Question, tips TipResolver) []Deelgebied {
	type group struct {
		score    float64
		maxScore float64
		firstOrd int
		tip      string
	}

	byID := make(map[string]entities.Question, len(catalog))
	groups := make(map[string]*group)
	for _, q := range catalog {
		byID[q.ID] = q
		if q.IsMultiSelect || q.Section == "" {
			continue
		}
		g, ok := groups[q.Section]
		if !ok {
			g = &group{firstOrd: q.Order, tip: q.Tip}
			groups[q.Section] = g
		}
		g.maxScore += q.Weight * 2
		if q.Order < g.firstOrd {
			g.firstOrd = q.Order
			g.tip = q.Tip
		}
	}

	for _, a := range scored {
		q, ok := byID[a.QuestionID]
		if !ok || q.IsMultiSelect || q.Section == "" {
			continue
		}
		groups[q.Section].score += float64(a.Points) * a.Weight
	}

	result := make([]Deelgebied, 0, len(groups))
	for name, g := range groups {
		if g.maxScore == 0 {
			continue
		}
		pct := int(math.Round(100 * g.score / g.maxScore))
		tier := tierForPercentage(pct)
		tip := g.tip
		if tips != nil {
			if t, ok := tips.TipFor(name, tier); ok {
				tip = t
			}
		}
		result = append(result, Deelgebied{
			Name:       name,
			Score:      g.score,
			MaxScore:   g.maxScore,
			Percentage: pct,
			TierLevel:  tier,
			Tip:        tip,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return groups[result[i].Name].firstOrd < groups[result[j].Name].firstOrd
	})
	return result
}

func tierForPercentage(pct int) Tier {
	switch {
	case pct < deelgebiedLaagBelow:
		return TierLaag
	case pct < deelgebiedGemiddeldBelow:
		return TierGemiddeld
	default:
		return TierHoog
	}
}
