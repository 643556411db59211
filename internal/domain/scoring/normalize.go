package scoring

import "github.com/fivefactor/ipipneo/internal/domain"

// Cubic fit from T-score to an approximate percentile.
const (
	cubic1 = 210.335958661391
	cubic2 = 16.7379362643389
	cubic3 = 0.405936512733332
	cubic4 = 0.00270624341822222
)

// Normalized pairs a T-score with its clamped percentile approximation.
type Normalized struct {
	TScore     float64
	Percentile float64
}

// TScore standardises a raw score to mean 50, SD 10.
func TScore(raw, mean, sd float64) float64 {
	return 10*(raw-mean)/sd + 50
}

// Percentile evaluates the cubic approximation. The value is kept as a float.
func Percentile(t float64) float64 {
	return cubic1 - cubic2*t + cubic3*t*t - cubic4*t*t*t
}

// Clamp forces the percentile to 1 below the norm scale minimum and to 99
// above its maximum; in between it returns p unchanged.
func Clamp(t, p float64, th domain.Thresholds) float64 {
	if t < float64(th.NormScaleMin) {
		return 1
	}
	if t > float64(th.NormScaleMax) {
		return 99
	}
	return p
}

// Normalize runs T-score, percentile and clamping for one raw value.
func Normalize(raw, mean, sd float64, th domain.Thresholds) Normalized {
	t := TScore(raw, mean, sd)
	return Normalized{TScore: t, Percentile: Clamp(t, Percentile(t), th)}
}

// NormalizeDomains standardises the five raw domain totals.
func NormalizeDomains(ds DomainScores, norm domain.NormRecord, th domain.Thresholds) (map[domain.Label]Normalized, error) {
	out := make(map[domain.Label]Normalized, len(domain.Labels))
	for _, l := range domain.Labels {
		raw, ok := ds[l]
		if !ok {
			return nil, domain.NewInternalError(domain.ErrQuestionSetting, "missing raw score for domain %s", string(l))
		}
		mean, err := norm.DomainMean(l)
		if err != nil {
			return nil, err
		}
		sd, err := norm.DomainSD(l)
		if err != nil {
			return nil, err
		}
		out[l] = Normalize(float64(raw), mean, sd, th)
	}
	return out, nil
}

// NormalizeFacets standardises each domain's six facets against the facet
// blocks of the norm record. Index 0 of each array is unused.
func NormalizeFacets(df DomainFacets, norm domain.NormRecord, th domain.Thresholds) (map[domain.Label][7]Normalized, error) {
	out := make(map[domain.Label][7]Normalized, len(domain.Labels))
	for _, l := range domain.Labels {
		traits, ok := df[l]
		if !ok {
			return nil, domain.NewInternalError(domain.ErrQuestionSetting, "missing facets for domain %s", string(l))
		}
		var n [7]Normalized
		for i := 1; i <= 6; i++ {
			mean, err := norm.FacetMean(l, i)
			if err != nil {
				return nil, err
			}
			sd, err := norm.FacetSD(l, i)
			if err != nil {
				return nil, err
			}
			n[i] = Normalize(float64(traits[i]), mean, sd, th)
		}
		out[l] = n
	}
	return out, nil
}
