package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivefactor/ipipneo/internal/domain"
)

func TestScoringError_KindsAndUnwrap(t *testing.T) {
	err := domain.NewInvalidInputError(domain.ErrInvalidAge, "the age (5) must be between 10 and 110")
	wrapped := fmt.Errorf("scoring failed: %w", err)

	se, ok := domain.AsScoringError(wrapped)
	require.True(t, ok)
	assert.Equal(t, domain.KindInvalidInput, se.Kind)
	assert.Equal(t, "the age (5) must be between 10 and 110", se.Error())
	assert.True(t, errors.Is(wrapped, domain.ErrInvalidAge))

	assert.Equal(t, domain.KindConfiguration, domain.KindOf(domain.NewConfigurationError(domain.ErrInvalidLabel, "bad")))
	internal := domain.NewInternalError(domain.ErrNormNotFound, "no record for %d", 7)
	assert.Equal(t, domain.KindInternal, domain.KindOf(internal))
	assert.Equal(t, "no record for 7", internal.Error())
}

func TestScoringError_FallsBackToSentinelMessage(t *testing.T) {
	err := &domain.ScoringError{Kind: domain.KindInternal, Err: domain.ErrQuestionSetting}
	assert.Equal(t, domain.ErrQuestionSetting.Error(), err.Error())
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, domain.ErrorKind(""), domain.KindOf(errors.New("boom")))
	_, ok := domain.AsScoringError(nil)
	assert.False(t, ok)
}
