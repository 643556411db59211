package scoring_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivefactor/ipipneo/internal/domain"
	"github.com/fivefactor/ipipneo/internal/domain/scoring"
)

func constant(n, value int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestScoreFacets_NeutralVector(t *testing.T) {
	for _, v := range domain.ValidVariants {
		ss, err := scoring.ScoreFacets(constant(int(v), 3), v)
		require.NoError(t, err)

		assert.Len(t, ss, 31)
		assert.Equal(t, 0, ss[0], "sentinel stays zero")
		for j := 1; j <= 30; j++ {
			assert.Equal(t, v.Scale()*3, ss[j], "facet %d", j)
		}

		ds := scoring.Domains(ss)
		assert.Len(t, ds, 5)
		for _, l := range domain.Labels {
			assert.Equal(t, 6*v.Scale()*3, ds[l], "domain %s", l)
		}
	}
}

func TestScoreFacets_StrideLayout(t *testing.T) {
	// Block i of 30 consecutive items answers i+1.
	options := make([]int, 120)
	for i := range options {
		options[i] = i/30 + 1
	}
	ss, err := scoring.ScoreFacets(options, domain.Variant120)
	require.NoError(t, err)
	for j := 1; j <= 30; j++ {
		assert.Equal(t, 1+2+3+4, ss[j], "facet %d", j)
	}
}

func TestScoreFacets_SingleItemLandsInItsFacet(t *testing.T) {
	options := constant(120, 1)
	options[36] = 5 // question 37 feeds facet 7
	ss, err := scoring.ScoreFacets(options, domain.Variant120)
	require.NoError(t, err)
	assert.Equal(t, 8, ss[7])
	assert.Equal(t, 4, ss[6])
	assert.Equal(t, 4, ss[8])
}

func TestScoreFacets_WrongLength(t *testing.T) {
	_, err := scoring.ScoreFacets(constant(119, 3), domain.Variant120)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrQuestionSetting))
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))

	_, err = scoring.ScoreFacets(constant(120, 3), domain.Variant300)
	assert.True(t, errors.Is(err, domain.ErrQuestionSetting))
}

func TestScoreFacets_UnknownVariant(t *testing.T) {
	_, err := scoring.ScoreFacets(constant(120, 3), domain.Variant(121))
	assert.True(t, errors.Is(err, domain.ErrUnknownVariant))
}

func TestDomains_FixedMapping(t *testing.T) {
	var ss scoring.FacetScores
	for j := 1; j <= 30; j++ {
		ss[j] = j
	}
	ds := scoring.Domains(ss)
	assert.Equal(t, 1+6+11+16+21+26, ds[domain.Neuroticism])
	assert.Equal(t, 2+7+12+17+22+27, ds[domain.Extraversion])
	assert.Equal(t, 3+8+13+18+23+28, ds[domain.Openness])
	assert.Equal(t, 4+9+14+19+24+29, ds[domain.Agreeableness])
	assert.Equal(t, 5+10+15+20+25+30, ds[domain.Conscientiousness])
}

func TestDistribute_MatchesDomains(t *testing.T) {
	var ss scoring.FacetScores
	for j := 1; j <= 30; j++ {
		ss[j] = j * 2
	}
	ds := scoring.Domains(ss)
	df := scoring.Distribute(ss)
	require.Len(t, df, 5)
	for _, l := range domain.Labels {
		total := 0
		for i := 1; i <= 6; i++ {
			total += df[l][i]
		}
		assert.Equal(t, ds[l], total, "domain %s", l)
	}
	assert.Equal(t, [7]int{0, 2, 12, 22, 32, 42, 52}, df[domain.Neuroticism])
}

func TestFacetItems(t *testing.T) {
	items, err := scoring.FacetItems(domain.Variant120, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 31, 61, 91}, items)

	items, err = scoring.FacetItems(domain.Variant300, 30)
	require.NoError(t, err)
	assert.Len(t, items, 10)
	assert.Equal(t, 300, items[9])

	_, err = scoring.FacetItems(domain.Variant120, 31)
	assert.True(t, errors.Is(err, domain.ErrQuestionSetting))
}

func TestFacetPosition(t *testing.T) {
	l, trait, ok := scoring.FacetPosition(26)
	require.True(t, ok)
	assert.Equal(t, domain.Neuroticism, l)
	assert.Equal(t, 6, trait)

	l, trait, ok = scoring.FacetPosition(5)
	require.True(t, ok)
	assert.Equal(t, domain.Conscientiousness, l)
	assert.Equal(t, 1, trait)

	_, _, ok = scoring.FacetPosition(0)
	assert.False(t, ok)
}

func TestLayout(t *testing.T) {
	rows, err := scoring.Layout(domain.Variant120)
	require.NoError(t, err)
	require.Len(t, rows, 30)

	reversed := 0
	for _, r := range rows {
		assert.Len(t, r.Items, 4)
		reversed += len(r.Reversed)
	}
	assert.Equal(t, 55, reversed)

	assert.Equal(t, "self_consciousness", rows[15].Name)
	assert.Equal(t, domain.Neuroticism, rows[15].Label)
}
