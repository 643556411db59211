package scoring

import (
	"fmt"
	"sort"

	"github.com/fivefactor/ipipneo/internal/domain"
)

// ReverseMode selects which items get reverse-keyed.
type ReverseMode int

const (
	ReverseFixed120 ReverseMode = iota
	ReverseFixed300
	// ReverseCustom reverses items flagged with reverse_scored == 1.
	ReverseCustom
)

func (m ReverseMode) String() string {
	switch m {
	case ReverseFixed120:
		return "fixed-120"
	case ReverseFixed300:
		return "fixed-300"
	case ReverseCustom:
		return "custom"
	default:
		return fmt.Sprintf("ReverseMode(%d)", int(m))
	}
}

// ModeFor picks the fixed table of the variant, or custom flags in test mode.
func ModeFor(v domain.Variant, test bool) (ReverseMode, error) {
	if err := v.Validate(); err != nil {
		return 0, err
	}
	switch {
	case test:
		return ReverseCustom, nil
	case v == domain.Variant300:
		return ReverseFixed300, nil
	default:
		return ReverseFixed120, nil
	}
}

// itemSet is a read-only set of question ids.
type itemSet map[int]struct{}

func newItemSet(ids ...int) itemSet {
	s := make(itemSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s itemSet) contains(id int) bool {
	_, ok := s[id]
	return ok
}

var reversed120 = newItemSet(
	9, 19, 24, 30, 39, 40, 48, 49, 51, 53, 54, 60, 62, 67, 68, 69, 70, 73, 74,
	75, 78, 79, 80, 81, 83, 84, 85, 88, 89, 90, 92, 94, 96, 97, 98, 99, 100,
	101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111, 113, 114, 115, 116,
	118, 119, 120,
)

var reversed300 = newItemSet(
	69, 99, 109, 118, 120, 129, 138, 139, 144, 148, 149, 150, 151, 152, 156,
	157, 158, 159, 160, 162, 163, 164, 165, 167, 168, 169, 171, 173, 174, 175,
	176, 178, 179, 180, 181, 182, 183, 184, 185, 186, 187, 188, 189, 190, 192,
	193, 194, 195, 196, 197, 198, 199, 201, 203, 204, 205, 206, 208, 209, 210,
	211, 212, 213, 214, 215, 216, 217, 218, 219, 220, 221, 222, 223, 224, 225,
	226, 227, 228, 229, 230, 231, 233, 234, 235, 236, 238, 239, 240, 241, 242,
	243, 244, 245, 246, 247, 248, 249, 250, 251, 252, 253, 254, 255, 256, 257,
	258, 259, 260, 261, 262, 263, 264, 265, 266, 267, 268, 269, 270, 271, 272,
	273, 274, 275, 276, 277, 278, 279, 280, 281, 282, 283, 284, 285, 286, 287,
	288, 289, 290, 291, 292, 293, 294, 295, 296, 297, 298, 299, 300,
)

func fixedSet(mode ReverseMode) itemSet {
	if mode == ReverseFixed300 {
		return reversed300
	}
	return reversed120
}

// IsReversed reports whether a question is reverse-keyed in the variant's fixed table.
func IsReversed(v domain.Variant, questionID int) bool {
	switch v {
	case domain.Variant120:
		return reversed120.contains(questionID)
	case domain.Variant300:
		return reversed300.contains(questionID)
	default:
		return false
	}
}

// ReversedItems returns the sorted reverse-keyed question ids of a variant.
func ReversedItems(v domain.Variant) []int {
	var set itemSet
	switch v {
	case domain.Variant120:
		set = reversed120
	case domain.Variant300:
		set = reversed300
	default:
		return nil
	}
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ReverseScored maps 1<->5 and 2<->4; 3 is fixed.
func ReverseScored(selected int) (int, error) {
	if selected < 1 || selected > 5 {
		return 0, domain.NewInvalidInputError(domain.ErrOptionOutOfRange,
			fmt.Sprintf("something wrong in the selection option: %d", selected))
	}
	return 6 - selected, nil
}

// Reverse returns a reverse-keyed copy of the sheet. The input is not modified.
func Reverse(sheet domain.AnswerSheet, mode ReverseMode) (domain.AnswerSheet, error) {
	if len(sheet.Answers) == 0 {
		return domain.AnswerSheet{}, domain.NewInvalidInputError(domain.ErrMissingKey, "the key named (answers) was not found")
	}

	if mode == ReverseCustom {
		flagged := false
		for _, a := range sheet.Answers {
			if a.ReverseScored != nil {
				flagged = true
				break
			}
		}
		if !flagged {
			return domain.AnswerSheet{}, domain.NewInvalidInputError(domain.ErrReverseFlagsMissing,
				"the key named (reverse_scored) was not found")
		}
	}

	out := sheet.Clone()
	set := fixedSet(mode)
	for i, a := range out.Answers {
		if a.QuestionID < 1 {
			return domain.AnswerSheet{}, domain.NewInvalidInputError(domain.ErrMissingKey,
				fmt.Sprintf("answer %d: the key named (id_question) was not found", i+1))
		}

		var flip bool
		if mode == ReverseCustom {
			flip = a.ReverseScored != nil && *a.ReverseScored == 1
		} else {
			flip = set.contains(a.QuestionID)
		}
		if !flip {
			continue
		}

		v, err := ReverseScored(a.Selected)
		if err != nil {
			return domain.AnswerSheet{}, fmt.Errorf("question %d: %w", a.QuestionID, err)
		}
		out.Answers[i].Selected = v
	}
	return out, nil
}

// Options sorts a sheet by question id and returns the selected options.
func Options(sheet domain.AnswerSheet) []int {
	answers := make([]domain.Answer, len(sheet.Answers))
	copy(answers, sheet.Answers)
	sort.SliceStable(answers, func(i, j int) bool {
		return answers[i].QuestionID < answers[j].QuestionID
	})

	options := make([]int, len(answers))
	for i, a := range answers {
		options[i] = a.Selected
	}
	return options
}
