package domain

import (
	"fmt"
	"sort"
)

const (
	MinAge = 10
	MaxAge = 110
)

// ValidateSex accepts exactly "M" or "F".
func ValidateSex(sex Sex) error {
	if sex == "" {
		return NewInvalidInputError(ErrInvalidSex, "the (sex) field is required")
	}
	if sex != SexMale && sex != SexFemale {
		return NewInvalidInputError(ErrInvalidSex, fmt.Sprintf("the (sex) field must contain (M or F), got %q", string(sex)))
	}
	return nil
}

// ValidateAge accepts ages in [MinAge, MaxAge].
func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return NewInvalidInputError(ErrInvalidAge, fmt.Sprintf("the age (%d) must be between %d and %d", age, MinAge, MaxAge))
	}
	return nil
}

// ValidateOptions checks a flat option vector: no zeros, nothing above 5,
// nothing negative, and exactly as many entries as the variant has items.
func ValidateOptions(options []int, v Variant) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if len(options) == 0 {
		return NewInvalidInputError(ErrAnswerCount, "the (answers) field is required")
	}
	for i, o := range options {
		switch {
		case o == 0:
			return NewInvalidInputError(ErrZeroOption, fmt.Sprintf("answer %d: it cannot contain zeros in the answer list", i+1))
		case o < 1 || o > 5:
			return NewInvalidInputError(ErrOptionOutOfRange, fmt.Sprintf("answer %d: option %d must be between 1 and 5", i+1, o))
		}
	}
	if len(options) != int(v) {
		return NewInvalidInputError(ErrAnswerCount, fmt.Sprintf("the (answers) field should be of size %d, got %d", int(v), len(options)))
	}
	return nil
}

// ValidateSheet checks an answer sheet for the variant: question ids must
// run 1..N with no duplicates or gaps, and every option must be in [1,5].
func ValidateSheet(sheet AnswerSheet, v Variant) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if len(sheet.Answers) == 0 {
		return NewInvalidInputError(ErrAnswerCount, "the (answers) field is required")
	}
	if len(sheet.Answers) != int(v) {
		return NewInvalidInputError(ErrAnswerCount, fmt.Sprintf("the (answers) field should be of size %d, got %d", int(v), len(sheet.Answers)))
	}

	ids := make([]int, 0, len(sheet.Answers))
	for _, a := range sheet.Answers {
		switch {
		case a.Selected == 0:
			return NewInvalidInputError(ErrZeroOption, fmt.Sprintf("question %d: it cannot contain zeros in the answer list", a.QuestionID))
		case a.Selected < 1 || a.Selected > 5:
			return NewInvalidInputError(ErrOptionOutOfRange, fmt.Sprintf("question %d: option %d must be between 1 and 5", a.QuestionID, a.Selected))
		}
		ids = append(ids, a.QuestionID)
	}

	sort.Ints(ids)
	for i, id := range ids {
		if id != i+1 {
			return NewInvalidInputError(ErrQuestionSequence, fmt.Sprintf("question ids must run 1..%d without gaps or duplicates (found %d at position %d)", int(v), id, i+1))
		}
	}
	return nil
}
