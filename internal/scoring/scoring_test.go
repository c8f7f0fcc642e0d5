package scoring

import (
	"testing"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

func TestPointsFor(t *testing.T) {
	cases := []struct {
		value string
		want  int
	}{
		{"ja", 2},
		{"soms", 1},
		{"nee", 0},
		{"", 0},
		{"misschien", 0},
	}
	for _, c := range cases {
		if got := PointsFor(c.value); got != c.want {
			t.Fatalf("PointsFor(%q)=%d, want %d", c.value, got, c.want)
		}
	}
}

func testCatalog() []entities.Question {
	return []entities.Question{
		{ID: "b1", Section: "energie", Weight: 1.5, Order: 1},
		{ID: "b2", Section: "energie", Weight: 1.0, Order: 2},
		{ID: "b3", Section: "gevoel", Weight: 1.0, Order: 3, Reversed: true},
		{ID: "b4", Section: "tijd", Weight: 1.0, Order: 4},
		{ID: "b5", Section: "tijd", Weight: 1.0, Order: 5, IsMultiSelect: true},
	}
}

func TestScoreAnswersReversed(t *testing.T) {
	catalog := testCatalog()
	cases := []struct {
		value string
		want  int
	}{
		{"ja", 0},
		{"soms", 1},
		{"nee", 2},
	}
	for _, c := range cases {
		scored := ScoreAnswers([]AnswerInput{{QuestionID: "b3", Value: c.value}}, catalog)
		if len(scored) != 1 {
			t.Fatalf("expected 1 scored answer, got %d", len(scored))
		}
		if scored[0].Points != c.want {
			t.Fatalf("reversed %q: points=%d, want %d", c.value, scored[0].Points, c.want)
		}
	}
}

func TestScoreAnswersMultiSelect(t *testing.T) {
	scored := ScoreAnswers([]AnswerInput{{QuestionID: "b5", Value: "ja"}}, testCatalog())
	if len(scored) != 1 {
		t.Fatalf("expected 1 scored answer, got %d", len(scored))
	}
	if scored[0].Points != 0 {
		t.Fatalf("multi-select answer scored %d points, want 0", scored[0].Points)
	}
}

func TestScoreAnswersUnknownQuestionDropped(t *testing.T) {
	scored := ScoreAnswers([]AnswerInput{
		{QuestionID: "b1", Value: "ja"},
		{QuestionID: "onbekend", Value: "ja"},
	}, testCatalog())
	if len(scored) != 1 {
		t.Fatalf("expected unknown question to be dropped, got %d answers", len(scored))
	}
	if scored[0].QuestionID != "b1" {
		t.Fatalf("kept answer is %q, want b1", scored[0].QuestionID)
	}
}

func TestComputeScoreWeighted(t *testing.T) {
	catalog := testCatalog()
	scored := ScoreAnswers([]AnswerInput{
		{QuestionID: "b1", Value: "ja"},   // 2 * 1.5 = 3
		{QuestionID: "b2", Value: "soms"}, // 1 * 1.0 = 1
		{QuestionID: "b3", Value: "nee"},  // reversed: 2 * 1.0 = 2
		{QuestionID: "b4", Value: "nee"},  // 0
	}, catalog)

	if got := ComputeScore(scored); got != 6.0 {
		t.Fatalf("ComputeScore=%v, want 6.0", got)
	}
}

func TestTierForScore(t *testing.T) {
	cases := []struct {
		score float64
		want  Tier
	}{
		{0, TierLaag},
		{6, TierLaag},
		{6.5, TierGemiddeld},
		{12, TierGemiddeld},
		{12.5, TierHoog},
		{24, TierHoog},
	}
	for _, c := range cases {
		if got := TierForScore(c.score); got != c.want {
			t.Fatalf("TierForScore(%v)=%s, want %s", c.score, got, c.want)
		}
	}
}

func TestTierForScoreMonotonic(t *testing.T) {
	rank := map[Tier]int{TierLaag: 0, TierGemiddeld: 1, TierHoog: 2}
	prev := TierLaag
	for s := 0.0; s <= 24.0; s += 0.5 {
		tier := TierForScore(s)
		if rank[tier] < rank[prev] {
			t.Fatalf("tier dropped from %s to %s at score %v", prev, tier, s)
		}
		prev = tier
	}
}
