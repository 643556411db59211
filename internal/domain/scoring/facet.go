package scoring

import (
	"github.com/fivefactor/ipipneo/internal/domain"
)

// FacetScores holds the 30 facet totals at indices 1..30; index 0 is unused.
type FacetScores [domain.FacetCount + 1]int

// DomainScores holds the raw total of each domain.
type DomainScores map[domain.Label]int

// DomainFacets holds each domain's six facet totals at indices 1..6.
type DomainFacets map[domain.Label][7]int

// Facet positions of each domain inside FacetScores. Item k of the
// questionnaire belongs to facet ((k-1) mod 30) + 1, and the facets cycle
// N, E, O, A, C.
var domainFacetIndex = map[domain.Label][6]int{
	domain.Neuroticism:       {1, 6, 11, 16, 21, 26},
	domain.Extraversion:      {2, 7, 12, 17, 22, 27},
	domain.Openness:          {3, 8, 13, 18, 23, 28},
	domain.Agreeableness:     {4, 9, 14, 19, 24, 29},
	domain.Conscientiousness: {5, 10, 15, 20, 25, 30},
}

// ScoreFacets sums the reverse-keyed options (ordered by question id) into
// facet totals. Facet j collects items j, j+30, j+60, ... until the
// variant's scale is exhausted.
func ScoreFacets(options []int, v domain.Variant) (FacetScores, error) {
	var ss FacetScores
	if err := v.Validate(); err != nil {
		return ss, err
	}

	scale := v.Scale()
	if len(options) != domain.FacetCount*scale {
		return ss, domain.NewInternalError(domain.ErrQuestionSetting,
			"the number of questions setting is wrong: scale %d needs %d answers, got %d",
			scale, domain.FacetCount*scale, len(options))
	}

	// 1-based working copy with a sentinel at index 0.
	answers := make([]int, 0, len(options)+1)
	answers = append(answers, 0)
	answers = append(answers, options...)

	for j := 0; j < domain.FacetCount; j++ {
		for i := 0; i < scale; i++ {
			ss[1+j] += answers[1+i*domain.FacetCount+j]
		}
	}
	return ss, nil
}

// Domains sums six facets per domain into the raw domain totals.
func Domains(ss FacetScores) DomainScores {
	out := make(DomainScores, len(domainFacetIndex))
	for l, idx := range domainFacetIndex {
		total := 0
		for _, i := range idx {
			total += ss[i]
		}
		out[l] = total
	}
	return out
}

// Distribute regroups the facet totals by domain, numbering them 1..6.
func Distribute(ss FacetScores) DomainFacets {
	out := make(DomainFacets, len(domainFacetIndex))
	for l, idx := range domainFacetIndex {
		var traits [7]int
		for t, i := range idx {
			traits[t+1] = ss[i]
		}
		out[l] = traits
	}
	return out
}

// FacetItems returns the question ids that feed one facet (1..30) of a variant.
func FacetItems(v domain.Variant, facet int) ([]int, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if facet < 1 || facet > domain.FacetCount {
		return nil, domain.NewInternalError(domain.ErrQuestionSetting, "facet index %d out of range 1..%d", facet, domain.FacetCount)
	}
	items := make([]int, 0, v.Scale())
	for i := 0; i < v.Scale(); i++ {
		items = append(items, facet+i*domain.FacetCount)
	}
	return items, nil
}

// FacetPosition locates a facet (1..30) inside its domain: label and trait 1..6.
func FacetPosition(facet int) (domain.Label, int, bool) {
	for l, idx := range domainFacetIndex {
		for t, i := range idx {
			if i == facet {
				return l, t + 1, true
			}
		}
	}
	return "", 0, false
}

// Layout lists the 30 facets of a variant with their item ids and the
// subset that is reverse-keyed in the fixed table.
func Layout(v domain.Variant) ([]domain.FacetInfo, error) {
	out := make([]domain.FacetInfo, 0, domain.FacetCount)
	for f := 1; f <= domain.FacetCount; f++ {
		items, err := FacetItems(v, f)
		if err != nil {
			return nil, err
		}
		l, trait, ok := FacetPosition(f)
		if !ok {
			return nil, domain.NewInternalError(domain.ErrQuestionSetting, "facet %d has no domain", f)
		}
		name, err := domain.FacetKey(l, trait)
		if err != nil {
			return nil, err
		}
		reversed := []int{}
		for _, id := range items {
			if IsReversed(v, id) {
				reversed = append(reversed, id)
			}
		}
		out = append(out, domain.FacetInfo{
			Facet:    f,
			Label:    l,
			Trait:    trait,
			Name:     name,
			Items:    items,
			Reversed: reversed,
		})
	}
	return out, nil
}
