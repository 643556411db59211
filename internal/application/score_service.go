package application

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fivefactor/ipipneo/internal/domain"
	"github.com/fivefactor/ipipneo/internal/domain/scoring"
)

const (
	Theory      = "Big 5 Personality Traits"
	LibraryName = "ipipneo"
	DateLayout  = "2006-01-02 15:04:05"
)

// Version is reported in every result footer. Overridden at build time.
var Version = "dev"

// ScoreService orchestrates the scoring pipeline:
// validate → reverse → flatten → facets → domains → norm → normalize → assemble.
// Thresholds are fixed per instance; a ScoreService is safe for concurrent use.
type ScoreService struct {
	variant    domain.Variant
	test       bool
	thresholds domain.Thresholds

	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option customises a ScoreService.
type Option func(*ScoreService)

// WithClock replaces time.Now for the result date.
func WithClock(now func() time.Time) Option {
	return func(s *ScoreService) { s.now = now }
}

// WithIDGenerator replaces the random result id source.
func WithIDGenerator(gen func() string) Option {
	return func(s *ScoreService) { s.newID = gen }
}

// WithLogger attaches a logger for pipeline stages. Nil keeps the service silent.
func WithLogger(l *slog.Logger) Option {
	return func(s *ScoreService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScoreService validates cfg and builds a service bound to its variant,
// reversal mode and thresholds.
func NewScoreService(cfg domain.ScoringConfig, opts ...Option) (*ScoreService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &ScoreService{
		variant:    cfg.Variant(),
		test:       cfg.Test,
		thresholds: cfg.Thresholds(),
		now:        time.Now,
		newID:      uuid.NewString,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Variant returns the questionnaire form scored by this instance.
func (s *ScoreService) Variant() domain.Variant { return s.variant }

// Thresholds returns the effective clamping and level bounds.
func (s *ScoreService) Thresholds() domain.Thresholds { return s.thresholds }

// CurrentNormScale returns the effective T-score clamping bounds.
func (s *ScoreService) CurrentNormScale() (minT, maxT int) {
	return s.thresholds.NormScaleMin, s.thresholds.NormScaleMax
}

// CurrentFacetLevel returns the effective low/high level thresholds.
func (s *ScoreService) CurrentFacetLevel() (low, high int) {
	return s.thresholds.LevelLow, s.thresholds.LevelHigh
}

// Compute scores one submission. The request's answers are never modified.
func (s *ScoreService) Compute(req domain.ScoreRequest) (*domain.Result, error) {
	if err := domain.ValidateSex(req.Sex); err != nil {
		return nil, err
	}
	if err := domain.ValidateAge(req.Age); err != nil {
		return nil, err
	}
	if err := domain.ValidateSheet(req.Answers, s.variant); err != nil {
		return nil, err
	}

	original := req.Answers.Clone()

	mode, err := scoring.ModeFor(s.variant, s.test)
	if err != nil {
		return nil, err
	}
	reversed, err := scoring.Reverse(original, mode)
	if err != nil {
		return nil, fmt.Errorf("reversing answers: %w", err)
	}
	s.logger.Debug("answers reversed", "mode", mode.String(), "answers", len(reversed.Answers))

	result, err := s.Evaluate(req.Sex, req.Age, scoring.Options(reversed))
	if err != nil {
		return nil, err
	}

	if req.Compare {
		result.Person.Result.Compare = &domain.Comparison{
			Original: original.Answers,
			Reversed: reversed.Answers,
		}
	}
	return result, nil
}

// Evaluate scores an option vector that is already reverse-keyed and
// ordered by question id.
func (s *ScoreService) Evaluate(sex domain.Sex, age int, options []int) (*domain.Result, error) {
	if err := domain.ValidateSex(sex); err != nil {
		return nil, err
	}
	if err := domain.ValidateAge(age); err != nil {
		return nil, err
	}
	if err := domain.ValidateOptions(options, s.variant); err != nil {
		return nil, err
	}

	ss, err := scoring.ScoreFacets(options, s.variant)
	if err != nil {
		return nil, err
	}

	norm, err := scoring.LookupNorm(s.variant, sex, age)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("norm selected", "id", norm.ID, "category", norm.Category)

	domains, err := scoring.NormalizeDomains(scoring.Domains(ss), norm, s.thresholds)
	if err != nil {
		return nil, fmt.Errorf("normalizing domains: %w", err)
	}
	facets, err := scoring.NormalizeFacets(scoring.Distribute(ss), norm, s.thresholds)
	if err != nil {
		return nil, fmt.Errorf("normalizing facets: %w", err)
	}

	personalities, err := scoring.Assemble(domains, facets, s.thresholds)
	if err != nil {
		return nil, err
	}

	result := &domain.Result{
		ID:       s.newID(),
		Theory:   Theory,
		Model:    s.variant.Model(),
		Question: s.variant,
		Test:     s.test,
		Person: domain.Person{
			Sex:    sex,
			Age:    age,
			Result: domain.PersonResult{Personalities: personalities},
		},
		Library: LibraryName,
		Version: Version,
		Date:    s.now().Format(DateLayout),
	}
	s.logger.Debug("result assembled", "id", result.ID, "questions", int(s.variant))
	return result, nil
}
