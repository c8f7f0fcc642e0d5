package scoring

import (
	"testing"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

type staticTips map[string]string

func (s staticTips) TipFor(deelgebied string, tier Tier) (string, bool) {
	tip, ok := s[deelgebied+"."+string(tier)]
	return tip, ok
}

func deelgebiedCatalog() []entities.Question {
	return []entities.Question{
		{ID: "b1", Section: "energie", Weight: 1.5, Order: 1, Tip: "catalogustip energie"},
		{ID: "b2", Section: "energie", Weight: 1.0, Order: 2},
		{ID: "b3", Section: "gevoel", Weight: 1.0, Order: 3, Tip: "catalogustip gevoel"},
		{ID: "b4", Section: "tijd", Weight: 1.0, Order: 4, Tip: "catalogustip tijd"},
		{ID: "b5", Section: "tijd", Weight: 1.0, Order: 5, IsMultiSelect: true},
	}
}

func TestComputeDeelgebiedenGrouping(t *testing.T) {
	catalog := deelgebiedCatalog()
	scored := ScoreAnswers([]AnswerInput{
		{QuestionID: "b1", Value: "ja"},   // energie 3.0
		{QuestionID: "b2", Value: "ja"},   // energie 2.0
		{QuestionID: "b3", Value: "soms"}, // gevoel 1.0
		{QuestionID: "b4", Value: "nee"},  // tijd 0.0
		{QuestionID: "b5", Value: "ja"},   // multi-select, no score
	}, catalog)

	result := ComputeDeelgebieden(scored, catalog, nil)
	if len(result) != 3 {
		t.Fatalf("expected 3 deelgebieden, got %d", len(result))
	}

	// Ordered by the first question of each section.
	wantOrder := []string{"energie", "gevoel", "tijd"}
	for i, name := range wantOrder {
		if result[i].Name != name {
			t.Fatalf("deelgebied %d is %q, want %q", i, result[i].Name, name)
		}
	}

	energie := result[0]
	if energie.Score != 5.0 || energie.MaxScore != 5.0 {
		t.Fatalf("energie score %v/%v, want 5/5", energie.Score, energie.MaxScore)
	}
	if energie.Percentage != 100 || energie.TierLevel != TierHoog {
		t.Fatalf("energie %d%% %s, want 100%% hoog", energie.Percentage, energie.TierLevel)
	}

	gevoel := result[1]
	if gevoel.MaxScore != 2.0 || gevoel.Percentage != 50 || gevoel.TierLevel != TierGemiddeld {
		t.Fatalf("gevoel max=%v pct=%d tier=%s, want 2 50 gemiddeld", gevoel.MaxScore, gevoel.Percentage, gevoel.TierLevel)
	}

	tijd := result[2]
	// The multi-select question does not count towards the max.
	if tijd.MaxScore != 2.0 {
		t.Fatalf("tijd max=%v, want 2 (multi-select excluded)", tijd.MaxScore)
	}
	if tijd.Percentage != 0 || tijd.TierLevel != TierLaag {
		t.Fatalf("tijd %d%% %s, want 0%% laag", tijd.Percentage, tijd.TierLevel)
	}
}

func TestComputeDeelgebiedenTips(t *testing.T) {
	catalog := deelgebiedCatalog()
	scored := ScoreAnswers([]AnswerInput{
		{QuestionID: "b1", Value: "ja"},
		{QuestionID: "b2", Value: "ja"},
		{QuestionID: "b3", Value: "soms"},
		{QuestionID: "b4", Value: "nee"},
	}, catalog)

	tips := staticTips{"energie.hoog": "neem vaker rust"}
	result := ComputeDeelgebieden(scored, catalog, tips)

	if result[0].Tip != "neem vaker rust" {
		t.Fatalf("energie tip %q, want resolver override", result[0].Tip)
	}
	// No resolver entry: the catalog tip of the section's first question.
	if result[1].Tip != "catalogustip gevoel" {
		t.Fatalf("gevoel tip %q, want catalog fallback", result[1].Tip)
	}
}

func TestTierForPercentageBands(t *testing.T) {
	cases := []struct {
		pct  int
		want Tier
	}{
		{0, TierLaag},
		{33, TierLaag},
		{34, TierGemiddeld},
		{66, TierGemiddeld},
		{67, TierHoog},
		{100, TierHoog},
	}
	for _, c := range cases {
		if got := tierForPercentage(c.pct); got != c.want {
			t.Fatalf("tierForPercentage(%d)=%s, want %s", c.pct, got, c.want)
		}
	}
}
