package domain

// NormSize is the length of a reference vector: a sentinel at index 0, five
// domain means, five domain SDs and six facet means plus six facet SDs for
// each of the five domains.
const NormSize = 71

// NormRecord holds the reference statistics for one demographic group.
type NormRecord struct {
	ID        int               `json:"id"`
	Category  string            `json:"category"`
	Reference [NormSize]float64 `json:"ns"`
}

// Position of each domain in the reference vector (1..5).
var normDomainIndex = map[Label]int{
	Neuroticism:       1,
	Extraversion:      2,
	Openness:          3,
	Agreeableness:     4,
	Conscientiousness: 5,
}

// Facet blocks: trait i (1..6) mean sits at i+offset[0], SD at i+offset[1].
var normFacetOffsets = map[Label][2]int{
	Neuroticism:       {10, 16},
	Extraversion:      {22, 28},
	Openness:          {34, 40},
	Agreeableness:     {46, 52},
	Conscientiousness: {58, 64},
}

// DomainMean returns the domain mean for a label.
func (n NormRecord) DomainMean(l Label) (float64, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	return n.Reference[normDomainIndex[l]], nil
}

// DomainSD returns the domain standard deviation for a label.
func (n NormRecord) DomainSD(l Label) (float64, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	return n.Reference[normDomainIndex[l]+5], nil
}

// FacetMean returns the mean of trait (1..6) within a domain.
func (n NormRecord) FacetMean(l Label, trait int) (float64, error) {
	idx, err := facetNormIndex(l, trait, 0)
	if err != nil {
		return 0, err
	}
	return n.Reference[idx], nil
}

// FacetSD returns the standard deviation of trait (1..6) within a domain.
func (n NormRecord) FacetSD(l Label, trait int) (float64, error) {
	idx, err := facetNormIndex(l, trait, 1)
	if err != nil {
		return 0, err
	}
	return n.Reference[idx], nil
}

func facetNormIndex(l Label, trait, which int) (int, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	if trait < 1 || trait > 6 {
		return 0, NewInternalError(ErrQuestionSetting, "trait index %d out of range 1..6", trait)
	}
	return trait + normFacetOffsets[l][which], nil
}
