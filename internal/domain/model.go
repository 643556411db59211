package domain

import (
	"encoding/json"
	"fmt"
)

// Variant identifies the questionnaire form: 120 or 300 items.
type Variant int

const (
	Variant120 Variant = 120
	Variant300 Variant = 300
)

// ValidVariants enumerates all supported questionnaire forms.
var ValidVariants = []Variant{Variant120, Variant300}

// FacetCount is the number of facets and the stride between items of the same facet.
const FacetCount = 30

// Scale returns how many items feed each facet (4 or 10), or 0 for unknown variants.
func (v Variant) Scale() int {
	switch v {
	case Variant120:
		return 4
	case Variant300:
		return 10
	default:
		return 0
	}
}

// Model returns the instrument name reported in results.
func (v Variant) Model() string {
	if v == Variant120 {
		return "IPIP-NEO"
	}
	return "IPIP"
}

// Validate reports a configuration error for anything other than 120 or 300.
func (v Variant) Validate() error {
	for _, vv := range ValidVariants {
		if v == vv {
			return nil
		}
	}
	return NewConfigurationError(ErrUnknownVariant, fmt.Sprintf("type question %d is invalid (valid: 120, 300)", int(v)))
}

// Sex of the respondent, used for norm selection.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Label is the one-letter Big-Five domain code.
type Label string

const (
	Openness          Label = "O"
	Conscientiousness Label = "C"
	Extraversion      Label = "E"
	Agreeableness     Label = "A"
	Neuroticism       Label = "N"
)

// Labels lists the domains in result order (O, C, E, A, N).
var Labels = []Label{Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism}

var labelNames = map[Label]string{
	Openness:          "openness",
	Conscientiousness: "conscientiousness",
	Extraversion:      "extraversion",
	Agreeableness:     "agreeableness",
	Neuroticism:       "neuroticism",
}

// Validate fails with ErrInvalidLabel for anything outside O, C, E, A, N.
func (l Label) Validate() error {
	if _, ok := labelNames[l]; !ok {
		return NewConfigurationError(ErrInvalidLabel, fmt.Sprintf("the Big-Five label %q is invalid", string(l)))
	}
	return nil
}

// Name returns the lowercase domain name, or "" for unknown labels.
func (l Label) Name() string { return labelNames[l] }

// LabelForName is the inverse of Label.Name.
func LabelForName(name string) (Label, bool) {
	for l, n := range labelNames {
		if n == name {
			return l, true
		}
	}
	return "", false
}

// Level is the qualitative band of a score.
type Level string

const (
	LevelLow     Level = "low"
	LevelAverage Level = "average"
	LevelHigh    Level = "high"
)

// Answer is one questionnaire response. ReverseScored is only consulted in
// test mode; nil means the item carries no flag.
type Answer struct {
	QuestionID    int  `json:"id_question"`
	Selected      int  `json:"id_select"`
	ReverseScored *int `json:"reverse_scored,omitempty"`
}

// AnswerSheet is the wire shape accepted from quiz front-ends.
type AnswerSheet struct {
	Answers []Answer `json:"answers"`
}

// Clone returns a deep copy so that callers never share backing arrays.
func (s AnswerSheet) Clone() AnswerSheet {
	out := AnswerSheet{Answers: make([]Answer, len(s.Answers))}
	for i, a := range s.Answers {
		out.Answers[i] = a
		if a.ReverseScored != nil {
			v := *a.ReverseScored
			out.Answers[i].ReverseScored = &v
		}
	}
	return out
}

// ScoreRequest is one questionnaire submission.
type ScoreRequest struct {
	Sex     Sex
	Age     int
	Answers AnswerSheet
	Compare bool
}

// Result is the full scoring record for one submission.
type Result struct {
	ID       string  `json:"id"`
	Theory   string  `json:"theory"`
	Model    string  `json:"model"`
	Question Variant `json:"question"`
	Test     bool    `json:"test"`
	Person   Person  `json:"person"`
	Library  string  `json:"library"`
	Version  string  `json:"version"`
	Date     string  `json:"date"`
}

// Person echoes the demographic inputs together with the scores.
type Person struct {
	Sex    Sex          `json:"sex"`
	Age    int          `json:"age"`
	Result PersonResult `json:"result"`
}

type PersonResult struct {
	Personalities Personalities `json:"personalities"`
	Compare       *Comparison   `json:"compare,omitempty"`
}

// Comparison holds the answers before and after reverse-keying.
type Comparison struct {
	Original []Answer `json:"user_answers_original"`
	Reversed []Answer `json:"user_answers_reversed"`
}

// DomainResult is the scored entry for one Big-Five domain.
type DomainResult struct {
	Label  Label         `json:"-"`
	TScore float64       `json:"t_score"`
	Score  float64       `json:"score"`
	Level  Level         `json:"level"`
	Traits []TraitResult `json:"traits"`
}

// TraitResult is one facet inside a domain. Trait is 1-based.
type TraitResult struct {
	Trait  int     `json:"trait"`
	Name   string  `json:"name"`
	TScore float64 `json:"t_score"`
	Score  float64 `json:"score"`
	Level  Level   `json:"level"`
}

// Personalities serialises as a list of single-key objects keyed by domain
// name, e.g. [{"openness": {...}}, {"conscientiousness": {...}}].
type Personalities []DomainResult

// Get returns the entry for a label.
func (p Personalities) Get(l Label) (DomainResult, bool) {
	for _, d := range p {
		if d.Label == l {
			return d, true
		}
	}
	return DomainResult{}, false
}

func (p Personalities) MarshalJSON() ([]byte, error) {
	out := make([]map[string]DomainResult, 0, len(p))
	for _, d := range p {
		if err := d.Label.Validate(); err != nil {
			return nil, err
		}
		out = append(out, map[string]DomainResult{d.Label.Name(): d})
	}
	return json.Marshal(out)
}

func (p *Personalities) UnmarshalJSON(data []byte) error {
	var raw []map[string]DomainResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Personalities, 0, len(raw))
	for _, entry := range raw {
		for name, d := range entry {
			l, ok := LabelForName(name)
			if !ok {
				return fmt.Errorf("unknown domain %q", name)
			}
			d.Label = l
			out = append(out, d)
		}
	}
	*p = out
	return nil
}

// ResultEntry is the compact form of a Result kept in local history.
type ResultEntry struct {
	ID       string             `json:"id"`
	Date     string             `json:"date"`
	Question Variant            `json:"question"`
	Sex      Sex                `json:"sex"`
	Age      int                `json:"age"`
	Scores   map[string]float64 `json:"scores"`
}

// Entry builds the history entry for a result.
func (r *Result) Entry() ResultEntry {
	scores := make(map[string]float64, len(r.Person.Result.Personalities))
	for _, d := range r.Person.Result.Personalities {
		scores[string(d.Label)] = d.Score
	}
	return ResultEntry{
		ID:       r.ID,
		Date:     r.Date,
		Question: r.Question,
		Sex:      r.Person.Sex,
		Age:      r.Person.Age,
		Scores:   scores,
	}
}
