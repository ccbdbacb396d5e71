package app_test

import (
	"testing"

	"github.com/ilearncom/ilearncom/internal/app"
	"github.com/ilearncom/ilearncom/internal/curriculum"
)

func mcQuestion(id int) curriculum.Question {
	return curriculum.Question{
		ID:           id,
		Kind:         curriculum.MultipleChoice,
		Difficulty:   curriculum.Easy,
		Text:         "pick",
		Options:      []string{"a", "b", "c"},
		CorrectIndex: 1,
	}
}

func saQuestion(id int, correct string) curriculum.Question {
	return curriculum.Question{
		ID:          id,
		Kind:        curriculum.ShortAnswer,
		Difficulty:  curriculum.Easy,
		Text:        "type",
		CorrectText: correct,
	}
}

func TestRecordAnswer_Overwrites(t *testing.T) {
	s := app.New()
	q := mcQuestion(1)

	if err := s.RecordAnswer(1, q, app.ChoiceAnswer(0)); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}
	if err := s.RecordAnswer(1, q, app.ChoiceAnswer(2)); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}

	a, ok := s.Answer(1, 1)
	if !ok || a.Choice != 2 {
		t.Errorf("answer = %+v, want choice 2", a)
	}
}

func TestRecordAnswer_RejectsKindMismatch(t *testing.T) {
	s := app.New()

	if err := s.RecordAnswer(1, mcQuestion(1), app.TextAnswer("b")); err == nil {
		t.Error("text answer to a choice question should be rejected")
	}
	if err := s.RecordAnswer(1, saQuestion(2, "x"), app.ChoiceAnswer(0)); err == nil {
		t.Error("choice answer to a short-answer question should be rejected")
	}

	matching := curriculum.Question{ID: 3, Kind: curriculum.Matching, Pairs: []curriculum.Pair{{Left: "l", Right: "r"}}}
	if err := s.RecordAnswer(1, matching, app.ChoiceAnswer(0)); err == nil {
		t.Error("matching questions should not accept answers")
	}
}

func TestRecordAnswer_RejectsOutOfRangeChoice(t *testing.T) {
	s := app.New()

	if err := s.RecordAnswer(1, mcQuestion(1), app.ChoiceAnswer(7)); err == nil {
		t.Error("out-of-range option should be rejected")
	}
}

func TestSubmitQuiz_FreezesAnswers(t *testing.T) {
	s := app.New()
	q := mcQuestion(1)
	if err := s.RecordAnswer(1, q, app.ChoiceAnswer(0)); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}

	s.SubmitQuiz()
	s.SubmitQuiz() // idempotent

	if !s.Submitted {
		t.Fatal("submitted = false after SubmitQuiz")
	}
	if err := s.RecordAnswer(1, q, app.ChoiceAnswer(2)); err == nil {
		t.Error("answers must be frozen once submitted")
	}
	a, _ := s.Answer(1, 1)
	if a.Choice != 0 {
		t.Errorf("answer changed after submission: %+v", a)
	}
}

func TestAnswers_NamespacedByWeek(t *testing.T) {
	s := app.New()

	// Same question id in two different weeks must not collide.
	if err := s.RecordAnswer(1, mcQuestion(1), app.ChoiceAnswer(0)); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}
	if err := s.RecordAnswer(2, mcQuestion(1), app.ChoiceAnswer(2)); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}

	a1, _ := s.Answer(1, 1)
	a2, _ := s.Answer(2, 1)
	if a1.Choice != 0 || a2.Choice != 2 {
		t.Errorf("cross-week collision: week1=%+v week2=%+v", a1, a2)
	}
}

func TestGrade_Choice(t *testing.T) {
	s := app.New()
	q := mcQuestion(1)

	if got := s.Grade(1, q); got != app.Unanswered {
		t.Errorf("unanswered grade = %v, want Unanswered", got)
	}

	s.RecordAnswer(1, q, app.ChoiceAnswer(1))
	if got := s.Grade(1, q); got != app.Correct {
		t.Errorf("grade = %v, want Correct", got)
	}

	s.RecordAnswer(1, q, app.ChoiceAnswer(0))
	if got := s.Grade(1, q); got != app.Incorrect {
		t.Errorf("grade = %v, want Incorrect", got)
	}
}

func TestGrade_ShortAnswer_CaseAndWhitespaceInsensitive(t *testing.T) {
	s := app.New()
	q := saQuestion(1, "paris")

	s.RecordAnswer(1, q, app.TextAnswer(" Paris "))
	if got := s.Grade(1, q); got != app.Correct {
		t.Errorf("grade(%q) = %v, want Correct", " Paris ", got)
	}

	s2 := app.New()
	s2.RecordAnswer(1, q, app.TextAnswer("Pariss"))
	if got := s2.Grade(1, q); got != app.Incorrect {
		t.Errorf("grade(%q) = %v, want Incorrect", "Pariss", got)
	}
}

func TestGrade_MatchingNeverGraded(t *testing.T) {
	s := app.New()
	q := curriculum.Question{ID: 1, Kind: curriculum.Matching, Pairs: []curriculum.Pair{{Left: "l", Right: "r"}}}

	if got := s.Grade(1, q); got != app.Ungraded {
		t.Errorf("grade = %v, want Ungraded", got)
	}
	s.SubmitQuiz()
	if got := s.Grade(1, q); got != app.Ungraded {
		t.Errorf("grade after submit = %v, want Ungraded", got)
	}
}
