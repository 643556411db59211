package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// Facet identifiers per domain, in trait order 1..6.
var facetIdentifiers = map[Label][6]string{
	Neuroticism:       {"Anxiety", "Anger", "Depression", "SelfConsciousness", "Immoderation", "Vulnerability"},
	Extraversion:      {"Friendliness", "Gregariousness", "Assertiveness", "ActivityLevel", "ExcitementSeeking", "Cheerfulness"},
	Openness:          {"Imagination", "ArtisticInterests", "Emotionality", "Adventurousness", "Intellect", "Liberalism"},
	Agreeableness:     {"Trust", "Morality", "Altruism", "Cooperation", "Modesty", "Sympathy"},
	Conscientiousness: {"SelfEfficacy", "Orderliness", "Dutifulness", "AchievementStriving", "SelfDiscipline", "Cautiousness"},
}

// FacetKey returns the snake_case name of a facet, e.g. "self_consciousness".
func FacetKey(l Label, trait int) (string, error) {
	id, err := facetIdentifier(l, trait)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.Join(camelcase.Split(id), "_")), nil
}

// FacetTitle returns the display name of a facet, e.g. "Self-Consciousness".
func FacetTitle(l Label, trait int) (string, error) {
	id, err := facetIdentifier(l, trait)
	if err != nil {
		return "", err
	}
	return strings.Join(camelcase.Split(id), "-"), nil
}

// FacetKeys returns the six snake_case facet names of a domain.
func FacetKeys(l Label) ([]string, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	keys := make([]string, 0, 6)
	for i := 1; i <= 6; i++ {
		k, _ := FacetKey(l, i)
		keys = append(keys, k)
	}
	return keys, nil
}

func facetIdentifier(l Label, trait int) (string, error) {
	if err := l.Validate(); err != nil {
		return "", err
	}
	if trait < 1 || trait > 6 {
		return "", NewInternalError(ErrQuestionSetting, "trait index %d out of range 1..6", trait)
	}
	return facetIdentifiers[l][trait-1], nil
}

// FacetInfo describes where one facet sits in the questionnaire layout.
type FacetInfo struct {
	Facet    int    `json:"facet"`
	Label    Label  `json:"domain"`
	Trait    int    `json:"trait"`
	Name     string `json:"name"`
	Items    []int  `json:"items"`
	Reversed []int  `json:"reversed"`
}
