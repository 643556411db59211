package answers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fivefactor/ipipneo/internal/domain"
)

// rawAnswer keeps pointers so absent keys can be told apart from zeros.
type rawAnswer struct {
	QuestionID    *int `json:"id_question"`
	Selected      *int `json:"id_select"`
	ReverseScored *int `json:"reverse_scored"`
}

type rawSheet struct {
	Answers *[]rawAnswer `json:"answers"`
}

// JSONReader implements domain.AnswerReader for the quiz wire format
// {"answers":[{"id_question":1,"id_select":3,"reverse_scored":0}, ...]}.
type JSONReader struct{}

func New() *JSONReader { return &JSONReader{} }

// Read decodes an answer sheet from a file. "-" reads standard input.
func (r *JSONReader) Read(path string) (domain.AnswerSheet, error) {
	var in io.Reader
	if path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return domain.AnswerSheet{}, err
		}
		defer f.Close()
		in = f
	}
	return Decode(in)
}

// Decode parses the wire format and checks that every item carries its
// required keys.
func Decode(in io.Reader) (domain.AnswerSheet, error) {
	var raw rawSheet
	if err := json.NewDecoder(in).Decode(&raw); err != nil {
		return domain.AnswerSheet{}, fmt.Errorf("decoding answers: %w", err)
	}
	if raw.Answers == nil {
		return domain.AnswerSheet{}, domain.NewInvalidInputError(domain.ErrMissingKey, "the key named (answers) was not found")
	}

	sheet := domain.AnswerSheet{Answers: make([]domain.Answer, 0, len(*raw.Answers))}
	for i, a := range *raw.Answers {
		if a.QuestionID == nil {
			return domain.AnswerSheet{}, domain.NewInvalidInputError(domain.ErrMissingKey,
				fmt.Sprintf("answer %d: the key named (id_question) was not found", i+1))
		}
		if a.Selected == nil {
			return domain.AnswerSheet{}, domain.NewInvalidInputError(domain.ErrMissingKey,
				fmt.Sprintf("answer %d: the key named (id_select) was not found", i+1))
		}
		sheet.Answers = append(sheet.Answers, domain.Answer{
			QuestionID:    *a.QuestionID,
			Selected:      *a.Selected,
			ReverseScored: a.ReverseScored,
		})
	}
	return sheet, nil
}
