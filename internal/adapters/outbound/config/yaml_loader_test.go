package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/fivefactor/ipipneo/internal/adapters/outbound/config"
	"github.com/fivefactor/ipipneo/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ipipneo.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
questions: 300
norm_scale:
  min: 30
  max: 75
facet_level:
  low: 40
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.Variant300, cfg.Variant())

	th := cfg.Thresholds()
	assert.Equal(t, 30, th.NormScaleMin)
	assert.Equal(t, 75, th.NormScaleMax)
	assert.Equal(t, 40, th.LevelLow)
	assert.Equal(t, 55, th.LevelHigh)
}

func TestYAMLLoader_EmptyFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.Variant120, cfg.Questions)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .ipipneo.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"unknown variant", "questions: 150", domain.ErrUnknownVariant},
		{"inverted norm scale", "norm_scale:\n  min: 80\n  max: 40", domain.ErrInvalidThresholds},
		{"inverted levels", "facet_level:\n  low: 60\n  high: 50", domain.ErrInvalidThresholds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := appconfig.New().Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid .ipipneo.yaml")
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	lo, hi := 40, 60
	cfg := domain.ScoringConfig{
		Questions:  domain.Variant300,
		Test:       true,
		FacetLevel: &domain.FacetLevelConf{Low: &lo, High: &hi},
	}

	path, err := appconfig.Write(dir, cfg, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".ipipneo.yaml"), path)

	loaded, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.Variant300, loaded.Questions)
	assert.True(t, loaded.Test)
	assert.Equal(t, 40, loaded.Thresholds().LevelLow)
	assert.Equal(t, 60, loaded.Thresholds().LevelHigh)
}

func TestWrite_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "questions: 120")

	_, err := appconfig.Write(dir, domain.DefaultConfig(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = appconfig.Write(dir, domain.ScoringConfig{Questions: domain.Variant300}, true)
	require.NoError(t, err)
	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.Variant300, cfg.Questions)
}
