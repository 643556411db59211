package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivefactor/ipipneo/internal/domain"
)

// indexed returns a record whose reference value equals its index.
func indexed() domain.NormRecord {
	var rec domain.NormRecord
	for i := range rec.Reference {
		rec.Reference[i] = float64(i)
	}
	return rec
}

func TestNormRecord_DomainOffsets(t *testing.T) {
	rec := indexed()
	want := map[domain.Label]float64{
		domain.Neuroticism:       1,
		domain.Extraversion:      2,
		domain.Openness:          3,
		domain.Agreeableness:     4,
		domain.Conscientiousness: 5,
	}
	for l, idx := range want {
		mean, err := rec.DomainMean(l)
		require.NoError(t, err)
		sd, err := rec.DomainSD(l)
		require.NoError(t, err)
		assert.Equal(t, idx, mean, "mean %s", l)
		assert.Equal(t, idx+5, sd, "sd %s", l)
	}
}

func TestNormRecord_FacetOffsets(t *testing.T) {
	rec := indexed()
	tests := []struct {
		label    domain.Label
		meanBase float64
		sdBase   float64
	}{
		{domain.Neuroticism, 10, 16},
		{domain.Extraversion, 22, 28},
		{domain.Openness, 34, 40},
		{domain.Agreeableness, 46, 52},
		{domain.Conscientiousness, 58, 64},
	}
	for _, tt := range tests {
		for i := 1; i <= 6; i++ {
			mean, err := rec.FacetMean(tt.label, i)
			require.NoError(t, err)
			sd, err := rec.FacetSD(tt.label, i)
			require.NoError(t, err)
			assert.Equal(t, tt.meanBase+float64(i), mean)
			assert.Equal(t, tt.sdBase+float64(i), sd)
		}
	}

	sd, err := rec.FacetSD(domain.Conscientiousness, 6)
	require.NoError(t, err)
	assert.Equal(t, 70.0, sd, "last facet SD is the last entry")
}

func TestNormRecord_Errors(t *testing.T) {
	rec := indexed()
	_, err := rec.DomainMean(domain.Label("X"))
	assert.True(t, errors.Is(err, domain.ErrInvalidLabel))

	_, err = rec.FacetMean(domain.Openness, 0)
	assert.True(t, errors.Is(err, domain.ErrQuestionSetting))
}
