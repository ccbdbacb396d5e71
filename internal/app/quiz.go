package app

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ilearncom/ilearncom/internal/curriculum"
)

// AnswerKind tags the variant stored in an Answer.
type AnswerKind string

const (
	AnswerChoice AnswerKind = "choice"
	AnswerText   AnswerKind = "text"
)

// Answer is a tagged union of the possible user answers: a selected option
// index for multiple-choice/scenario questions, or free text for
// short-answer questions.
type Answer struct {
	Kind   AnswerKind `json:"kind"`
	Choice int        `json:"choice,omitempty"`
	Text   string     `json:"text,omitempty"`
}

// ChoiceAnswer builds a choice answer.
func ChoiceAnswer(i int) Answer {
	return Answer{Kind: AnswerChoice, Choice: i}
}

// TextAnswer builds a free-text answer.
func TextAnswer(s string) Answer {
	return Answer{Kind: AnswerText, Text: s}
}

// QuestionKey identifies a question across the whole curriculum. Raw
// question IDs are only unique within a week, so the week number is part
// of the key.
type QuestionKey struct {
	Week int `json:"week"`
	ID   int `json:"id"`
}

// Verdict is the render-time grading outcome for one question.
type Verdict int

const (
	Unanswered Verdict = iota
	Correct
	Incorrect
	Ungraded // matching questions are displayed but never graded
)

// RecordAnswer stores the user's answer for a question. It is rejected once
// the quiz has been submitted, and when the answer variant does not match
// the question's declared type.
func (s *State) RecordAnswer(week int, q curriculum.Question, a Answer) error {
	if s.Submitted {
		return fmt.Errorf("quiz already submitted")
	}

	switch q.Kind {
	case curriculum.MultipleChoice, curriculum.Scenario:
		if a.Kind != AnswerChoice {
			return fmt.Errorf("question %d expects a choice answer, got %s", q.ID, a.Kind)
		}
		if a.Choice < 0 || a.Choice >= len(q.Options) {
			return fmt.Errorf("question %d: option %d out of range", q.ID, a.Choice)
		}
	case curriculum.ShortAnswer:
		if a.Kind != AnswerText {
			return fmt.Errorf("question %d expects a text answer, got %s", q.ID, a.Kind)
		}
	default:
		return fmt.Errorf("question %d (%s) does not take answers", q.ID, q.Kind)
	}

	s.Answers[QuestionKey{Week: week, ID: q.ID}] = a
	return nil
}

// Answer returns the stored answer for a question, if any.
func (s *State) Answer(week, id int) (Answer, bool) {
	a, ok := s.Answers[QuestionKey{Week: week, ID: id}]
	return a, ok
}

// SubmitQuiz freezes the answers and enables feedback. Idempotent.
func (s *State) SubmitQuiz() {
	s.Submitted = true
}

// ResetQuiz clears all answers and the submitted flag.
func (s *State) ResetQuiz() {
	s.Answers = make(map[QuestionKey]Answer)
	s.Submitted = false
}

// Grade computes the verdict for one question against the stored answer.
// It is pure presentation: nothing is stored, no aggregate exists.
func (s *State) Grade(week int, q curriculum.Question) Verdict {
	if q.Kind == curriculum.Matching {
		return Ungraded
	}

	a, ok := s.Answer(week, q.ID)
	if !ok {
		return Unanswered
	}

	switch q.Kind {
	case curriculum.MultipleChoice, curriculum.Scenario:
		if a.Kind == AnswerChoice && a.Choice == q.CorrectIndex {
			return Correct
		}
	case curriculum.ShortAnswer:
		if a.Kind == AnswerText && foldEqual(a.Text, q.CorrectText) {
			return Correct
		}
	}
	return Incorrect
}

// foldEqual compares two strings ignoring case and surrounding whitespace.
func foldEqual(a, b string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}
