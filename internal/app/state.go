// Package app holds the application view state and the named transitions
// that mutate it. Rendering derives everything else from this state, so the
// transitions here are testable without any UI.
package app

import (
	"github.com/ilearncom/ilearncom/internal/curriculum"
)

// View identifies one of the top-level screens.
type View string

const (
	ViewHome         View = "home"
	ViewIntroduction View = "introduction"
	ViewCurriculum   View = "curriculum"
	ViewLesson       View = "lesson"
	ViewQuiz         View = "quiz"
	ViewTutor        View = "tutor"
)

// State is the whole mutable application state. It is mutated only through
// the transition methods in this package; the renderer treats it as
// read-only.
type State struct {
	View         View                    `json:"view"`
	SelectedWeek int                     `json:"selected_week"` // 0 = none
	Answers      map[QuestionKey]Answer  `json:"answers"`
	Submitted    bool                    `json:"submitted"`
	Chat         ChatSession             `json:"chat"`
	Images       map[StepKey]*ImageEntry `json:"images"`
}

// New returns the initial state: home view, nothing selected, empty quiz
// and caches.
func New() *State {
	return &State{
		View:    ViewHome,
		Answers: make(map[QuestionKey]Answer),
		Images:  make(map[StepKey]*ImageEntry),
	}
}

// Go handles a sidebar selection. Any destination other than the lesson
// view clears the selected week so stale lesson context cannot leak into
// non-lesson views.
func (s *State) Go(v View) {
	s.View = v
	if v != ViewLesson {
		s.SelectedWeek = 0
	}
}

// OpenLesson selects a week and shows its lesson.
func (s *State) OpenLesson(week int) {
	s.SelectedWeek = week
	s.View = ViewLesson
}

// StartQuiz shows the quiz for the current context: the selected week's
// quiz, or the pooled quiz when no week is selected.
func (s *State) StartQuiz() {
	s.View = ViewQuiz
}

// AdvanceLesson moves on after a submitted quiz. With no week selected
// (pooled quiz) it simply returns to the curriculum list. With a week
// selected it opens the next week's lesson, or returns to the curriculum
// list after the last week; both branches reset the quiz state. The return
// value reports whether the viewport should scroll back to the top.
func (s *State) AdvanceLesson(store *curriculum.Store) bool {
	if s.SelectedWeek == 0 {
		s.View = ViewCurriculum
		return false
	}

	if next, ok := store.Next(s.SelectedWeek); ok {
		s.SelectedWeek = next.Number
		s.View = ViewLesson
	} else {
		s.SelectedWeek = 0
		s.View = ViewCurriculum
	}
	s.ResetQuiz()
	return true
}
