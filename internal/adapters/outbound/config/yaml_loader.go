package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fivefactor/ipipneo/internal/domain"
)

// FileName is the scorer configuration file looked up in a directory.
const FileName = ".ipipneo.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .ipipneo.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .ipipneo.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.ScoringConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ScoringConfig{}, err
	}

	var cfg domain.ScoringConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ScoringConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate the raw file before defaults hide a typo.
	if err := cfg.Validate(); err != nil {
		return domain.ScoringConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return domain.DefaultConfig().Merge(cfg), nil
}

// Write marshals cfg into dir/.ipipneo.yaml, refusing to overwrite unless force is set.
func Write(dir string, cfg domain.ScoringConfig, force bool) (string, error) {
	path := filepath.Join(dir, FileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", FileName)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", FileName, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
