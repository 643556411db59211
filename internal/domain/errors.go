package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so callers can tell user mistakes from
// misconfiguration and from defects.
type ErrorKind string

const (
	KindInvalidInput  ErrorKind = "invalid_input"
	KindConfiguration ErrorKind = "configuration"
	KindInternal      ErrorKind = "internal"
)

var (
	ErrInvalidSex          = errors.New("invalid sex")
	ErrInvalidAge          = errors.New("invalid age")
	ErrAnswerCount         = errors.New("invalid answer count")
	ErrOptionOutOfRange    = errors.New("option out of range")
	ErrZeroOption          = errors.New("zero option")
	ErrMissingKey          = errors.New("missing key")
	ErrQuestionSequence    = errors.New("question ids are not contiguous")
	ErrReverseFlagsMissing = errors.New("reverse_scored flags missing")
	ErrUnknownVariant      = errors.New("unknown questionnaire variant")
	ErrInvalidLabel        = errors.New("invalid Big-Five label")
	ErrInvalidThresholds   = errors.New("invalid thresholds")
	ErrQuestionSetting     = errors.New("the number of questions setting is wrong")
	ErrNormNotFound        = errors.New("no norm record matches")
)

// ScoringError carries a kind, a human message and the sentinel it wraps.
type ScoringError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ScoringError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *ScoringError) Unwrap() error { return e.Err }

func NewInvalidInputError(sentinel error, msg string) error {
	return &ScoringError{Kind: KindInvalidInput, Message: msg, Err: sentinel}
}

func NewConfigurationError(sentinel error, msg string) error {
	return &ScoringError{Kind: KindConfiguration, Message: msg, Err: sentinel}
}

func NewInternalError(sentinel error, format string, args ...any) error {
	return &ScoringError{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: sentinel}
}

func AsScoringError(err error) (*ScoringError, bool) {
	var se *ScoringError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// KindOf returns the kind of err, or "" if err is not a ScoringError.
func KindOf(err error) ErrorKind {
	if se, ok := AsScoringError(err); ok {
		return se.Kind
	}
	return ""
}
