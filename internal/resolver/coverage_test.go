package resolver

import (
	"testing"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/scoring"
)

func actief(r entities.HelpResource) entities.HelpResource {
	r.IsActive = true
	r.VisibleAtTierLow = true
	r.VisibleAtTierMedium = true
	r.VisibleAtTierHigh = true
	return r
}

func TestMatchInactiveNeverMatches(t *testing.T) {
	r := actief(entities.HelpResource{Name: "X", CoverageLevel: entities.CoverageLandelijk})
	r.IsActive = false
	if Match(r, Query{}) {
		t.Fatal("inactive resource matched")
	}
}

func TestMatchTierVisibility(t *testing.T) {
	r := actief(entities.HelpResource{Name: "X", CoverageLevel: entities.CoverageLandelijk})
	r.VisibleAtTierLow = false

	if Match(r, Query{Tier: scoring.TierLaag}) {
		t.Fatal("matched at laag despite visibility flag")
	}
	if !Match(r, Query{Tier: scoring.TierHoog}) {
		t.Fatal("did not match at hoog")
	}
	if !Match(r, Query{}) {
		t.Fatal("did not match without a tier filter")
	}
}

func TestMatchCoverageHierarchy(t *testing.T) {
	q := Query{Municipality: "Arnhem", City: "Arnhem", District: "Presikhaaf"}

	cases := []struct {
		name string
		r    entities.HelpResource
		want bool
	}{
		{"landelijk", entities.HelpResource{CoverageLevel: entities.CoverageLandelijk}, true},
		{"provincie", entities.HelpResource{CoverageLevel: entities.CoverageProvincie, Province: "Gelderland"}, true},
		{"eigen gemeente", entities.HelpResource{CoverageLevel: entities.CoverageGemeente, Municipality: "Arnhem"}, true},
		{"andere gemeente", entities.HelpResource{CoverageLevel: entities.CoverageGemeente, Municipality: "Utrecht"}, false},
		{"stad in dekking", entities.HelpResource{CoverageLevel: entities.CoverageStad, Municipality: "Arnhem", CoverageCities: []string{"Arnhem"}}, true},
		{"stad buiten dekking", entities.HelpResource{CoverageLevel: entities.CoverageStad, Municipality: "Arnhem", CoverageCities: []string{"Velp"}}, false},
		{"wijk in dekking", entities.HelpResource{CoverageLevel: entities.CoverageWijk, Municipality: "Arnhem", CoverageDistricts: []string{"Presikhaaf"}}, true},
		{"wijk buiten dekking", entities.HelpResource{CoverageLevel: entities.CoverageWijk, Municipality: "Arnhem", CoverageDistricts: []string{"Malburgen"}}, false},
		{"legacy zonder dekking", entities.HelpResource{}, true},
	}
	for _, c := range cases {
		if got := Match(actief(c.r), q); got != c.want {
			t.Fatalf("%s: Match=%v, want %v", c.name, got, c.want)
		}
	}
}

func TestMatchCaseInsensitiveMunicipality(t *testing.T) {
	r := actief(entities.HelpResource{CoverageLevel: entities.CoverageGemeente, Municipality: "arnhem"})
	if !Match(r, Query{Municipality: "Arnhem"}) {
		t.Fatal("municipality comparison should ignore case")
	}
}

func TestMatchSearchTerm(t *testing.T) {
	r := actief(entities.HelpResource{
		Name:        "Respijtzorg De Brug",
		Description: "Tijdelijke overname van de zorg",
		Category:    "respijtzorg",
	})

	if !Match(r, Query{SearchTerm: "respijt"}) {
		t.Fatal("name/category term did not match")
	}
	if !Match(r, Query{SearchTerm: "OVERNAME"}) {
		t.Fatal("description term should match case-insensitively")
	}
	if Match(r, Query{SearchTerm: "dagbesteding"}) {
		t.Fatal("unrelated term matched")
	}
}

func TestResolveLocalFirstOrdering(t *testing.T) {
	candidates := []entities.HelpResource{
		actief(entities.HelpResource{Name: "Zorgmaatje", CoverageLevel: entities.CoverageLandelijk}),
		actief(entities.HelpResource{Name: "Arnhemse Helpers", CoverageLevel: entities.CoverageGemeente, Municipality: "Arnhem"}),
		actief(entities.HelpResource{Name: "Buurtzorg Arnhem", CoverageLevel: entities.CoverageGemeente, Municipality: "Arnhem"}),
		actief(entities.HelpResource{Name: "Alles Landelijk", CoverageLevel: entities.CoverageLandelijk}),
		actief(entities.HelpResource{Name: "Utrechtse Helpers", CoverageLevel: entities.CoverageGemeente, Municipality: "Utrecht"}),
	}

	got := Resolve(candidates, Query{Municipality: "Arnhem"})

	want := []string{"Arnhemse Helpers", "Buurtzorg Arnhem", "Alles Landelijk", "Zorgmaatje"}
	if len(got) != len(want) {
		t.Fatalf("got %d resources, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d is %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestResolveDedupesByNameKeepingLocal(t *testing.T) {
	candidates := []entities.HelpResource{
		actief(entities.HelpResource{Name: "MantelzorgNL", CoverageLevel: entities.CoverageLandelijk, Description: "landelijk"}),
		actief(entities.HelpResource{Name: "mantelzorgnl", CoverageLevel: entities.CoverageGemeente, Municipality: "Arnhem", Description: "lokaal"}),
	}

	got := Resolve(candidates, Query{Municipality: "Arnhem"})
	if len(got) != 1 {
		t.Fatalf("got %d resources, want 1 after dedupe", len(got))
	}
	if got[0].Description != "lokaal" {
		t.Fatalf("dedupe kept %q, want the local occurrence", got[0].Description)
	}
}

func TestResolveWithoutMunicipality(t *testing.T) {
	candidates := []entities.HelpResource{
		actief(entities.HelpResource{Name: "B", CoverageLevel: entities.CoverageGemeente, Municipality: "Utrecht"}),
		actief(entities.HelpResource{Name: "A", CoverageLevel: entities.CoverageLandelijk}),
	}

	got := Resolve(candidates, Query{})
	if len(got) != 2 {
		t.Fatalf("got %d resources, want 2", len(got))
	}
	if got[0].Name != "A" || got[1].Name != "B" {
		t.Fatalf("order %q,%q, want alphabetical A,B", got[0].Name, got[1].Name)
	}
}
