// Package resolver implements the help-resource matching rules: geographic
// coverage, tier visibility and local-first ordering. It is pure so the query
// policy can be tested without a database; repositories only fetch candidates.
package resolver

import (
	"sort"
	"strings"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/scoring"
)

// Query are the optional filters for a resource lookup.
type Query struct {
	Municipality string
	Tier         scoring.Tier
	Category     string
	Type         entities.ResourceType
	SearchTerm   string
	City         string
	District     string
}

// Match reports whether a single resource is visible for the query. Inactive
// resources never match. A resource without coverage info (legacy rows) is
// treated as nationally visible.
func Match(r entities.HelpResource, q Query) bool {
	if !r.IsActive {
		return false
	}
	if q.Tier != "" && !visibleAtTier(r, q.Tier) {
		return false
	}
	if q.Category != "" && r.Category != "" && !strings.EqualFold(r.Category, q.Category) {
		return false
	}
	if q.Type != "" && r.Type != q.Type {
		return false
	}
	if q.SearchTerm != "" && !matchesTerm(r, q.SearchTerm) {
		return false
	}
	if q.Municipality == "" {
		return true
	}
	return coveredBy(r, q)
}

// Resolve filters, orders and dedupes a candidate list. Municipality-scoped
// matches come before national fallbacks; within each bucket the order is
// alphabetical by name. Duplicates by name keep the most local occurrence.
func Resolve(candidates []entities.HelpResource, q Query) []entities.HelpResource {
	var local, national []entities.HelpResource
	for _, r := range candidates {
		if !Match(r, q) {
			continue
		}
		if q.Municipality != "" && isLocal(r, q.Municipality) {
			local = append(local, r)
		} else {
			national = append(national, r)
		}
	}

	byName := func(rs []entities.HelpResource) {
		sort.Slice(rs, func(i, j int) bool {
			return strings.ToLower(rs[i].Name) < strings.ToLower(rs[j].Name)
		})
	}
	byName(local)
	byName(national)

	seen := make(map[string]bool)
	out := make([]entities.HelpResource, 0, len(local)+len(national))
	for _, r := range append(local, national...) {
		key := strings.ToLower(r.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

func visibleAtTier(r entities.HelpResource, tier scoring.Tier) bool {
	switch tier {
	case scoring.TierLaag:
		return r.VisibleAtTierLow
	case scoring.TierGemiddeld:
		return r.VisibleAtTierMedium
	case scoring.TierHoog:
		return r.VisibleAtTierHigh
	}
	return true
}

func matchesTerm(r entities.HelpResource, term string) bool {
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Name), t) ||
		strings.Contains(strings.ToLower(r.Description), t) ||
		strings.Contains(strings.ToLower(r.Category), t)
}

// coveredBy checks the coverage hierarchy against a municipality query.
// Rows narrower than gemeente additionally require membership in their
// configured city/district sets.
func coveredBy(r entities.HelpResource, q Query) bool {
	switch r.CoverageLevel {
	case entities.CoverageLandelijk:
		return true
	case entities.CoverageProvincie:
		// Province rows are visible to any municipality query; the province
		// itself is not part of the query key.
		return true
	case entities.CoverageGemeente:
		return r.Municipality == "" || strings.EqualFold(r.Municipality, q.Municipality)
	case entities.CoverageStad:
		if !strings.EqualFold(r.Municipality, q.Municipality) {
			return false
		}
		return q.City == "" || containsFold(r.CoverageCities, q.City)
	case entities.CoverageWijk:
		if !strings.EqualFold(r.Municipality, q.Municipality) {
			return false
		}
		return q.District == "" || containsFold(r.CoverageDistricts, q.District)
	default:
		// Legacy rows without coverage info behave as landelijk.
		return true
	}
}

func isLocal(r entities.HelpResource, municipality string) bool {
	switch r.CoverageLevel {
	case entities.CoverageGemeente, entities.CoverageStad, entities.CoverageWijk:
		return strings.EqualFold(r.Municipality, municipality)
	}
	return false
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
