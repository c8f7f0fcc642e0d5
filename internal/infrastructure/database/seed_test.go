package database

import (
	"testing"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

func TestBalanstestCatalogWeights(t *testing.T) {
	questions := BalanstestQuestions()
	if len(questions) != 11 {
		t.Fatalf("catalog has %d questions, want 11", len(questions))
	}

	sectionWeights := make(map[string]float64)
	var total float64
	for _, q := range questions {
		if q.QuestionnaireType != entities.QuestionnaireBalanstest {
			t.Fatalf("question %s has type %s", q.ID, q.QuestionnaireType)
		}
		if q.Section == "" {
			t.Fatalf("question %s has no section", q.ID)
		}
		sectionWeights[q.Section] += q.Weight
		total += q.Weight
	}

	// Weighted max is total * 2 = 24, the score scale of the report.
	if total != 12.0 {
		t.Fatalf("total weight %v, want 12", total)
	}
	want := map[string]float64{
		entities.SectionEnergie: 4.5,
		entities.SectionGevoel:  4.0,
		entities.SectionTijd:    3.5,
	}
	for section, w := range want {
		if sectionWeights[section] != w {
			t.Fatalf("section %s weight %v, want %v", section, sectionWeights[section], w)
		}
	}
}

func TestBalanstestCatalogOrderAndTips(t *testing.T) {
	questions := BalanstestQuestions()
	for i, q := range questions {
		if q.Order != i+1 {
			t.Fatalf("question %s has order %d at position %d", q.ID, q.Order, i)
		}
		if q.Tip == "" {
			t.Fatalf("question %s has no tip", q.ID)
		}
	}
}

func TestCheckinCatalog(t *testing.T) {
	questions := CheckinQuestions()
	if len(questions) != 5 {
		t.Fatalf("check-in catalog has %d questions, want 5", len(questions))
	}

	var reversed, multi int
	for _, q := range questions {
		if q.QuestionnaireType != entities.QuestionnaireCheckin {
			t.Fatalf("question %s has type %s", q.ID, q.QuestionnaireType)
		}
		if q.Reversed {
			reversed++
		}
		if q.IsMultiSelect {
			multi++
		}
	}
	if reversed != 2 {
		t.Fatalf("%d reversed questions, want 2", reversed)
	}
	if multi != 1 {
		t.Fatalf("%d multi-select questions, want 1", multi)
	}
}

func TestCareTaskCatalog(t *testing.T) {
	tasks := CareTasks()
	if len(tasks) != 8 {
		t.Fatalf("task catalog has %d tasks, want 8", len(tasks))
	}

	seen := make(map[string]bool)
	for i, task := range tasks {
		if task.ID == "" || task.Name == "" {
			t.Fatalf("task %d misses id or name: %+v", i, task)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate task id %s", task.ID)
		}
		seen[task.ID] = true
		if task.Order != i+1 {
			t.Fatalf("task %s has order %d at position %d", task.ID, task.Order, i)
		}
	}
}
