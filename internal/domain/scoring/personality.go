package scoring

import "github.com/fivefactor/ipipneo/internal/domain"

// Personality builds the result entry of one domain. Levels are derived
// from the clamped percentile of the domain and of each facet.
func Personality(l domain.Label, big5 Normalized, traits [7]Normalized, th domain.Thresholds) (domain.DomainResult, error) {
	if err := l.Validate(); err != nil {
		return domain.DomainResult{}, err
	}

	keys, err := domain.FacetKeys(l)
	if err != nil {
		return domain.DomainResult{}, err
	}

	out := domain.DomainResult{
		Label:  l,
		TScore: big5.TScore,
		Score:  big5.Percentile,
		Level:  th.Classify(big5.Percentile),
		Traits: make([]domain.TraitResult, 0, 6),
	}
	for i := 1; i <= 6; i++ {
		out.Traits = append(out.Traits, domain.TraitResult{
			Trait:  i,
			Name:   keys[i-1],
			TScore: traits[i].TScore,
			Score:  traits[i].Percentile,
			Level:  th.Classify(traits[i].Percentile),
		})
	}
	return out, nil
}

// Assemble builds all five entries in O, C, E, A, N order.
func Assemble(domains map[domain.Label]Normalized, facets map[domain.Label][7]Normalized, th domain.Thresholds) (domain.Personalities, error) {
	out := make(domain.Personalities, 0, len(domain.Labels))
	for _, l := range domain.Labels {
		d, ok := domains[l]
		if !ok {
			return nil, domain.NewInternalError(domain.ErrQuestionSetting, "missing normalized score for domain %s", string(l))
		}
		f, ok := facets[l]
		if !ok {
			return nil, domain.NewInternalError(domain.ErrQuestionSetting, "missing normalized facets for domain %s", string(l))
		}
		p, err := Personality(l, d, f, th)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
