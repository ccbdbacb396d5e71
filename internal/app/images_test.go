package app_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ilearncom/ilearncom/internal/app"
)

func TestBeginImage_IdempotentWhileLoading(t *testing.T) {
	s := app.New()
	key := app.StepKey{Week: 1, Section: 1, Step: 1}

	if !s.BeginImage(key) {
		t.Fatal("first BeginImage() should issue a request")
	}
	if s.BeginImage(key) {
		t.Error("second BeginImage() while loading must not issue a request")
	}

	entry, ok := s.ImageAt(key)
	if !ok || entry.Status != app.ImageLoading {
		t.Errorf("entry = %+v, want loading", entry)
	}
}

func TestBeginImage_NoOpWhenDataPresent(t *testing.T) {
	s := app.New()
	key := app.StepKey{Week: 1, Section: 1, Step: 1}
	s.BeginImage(key)
	s.CompleteImage(key, "image/png", []byte{1, 2, 3}, nil)

	if s.BeginImage(key) {
		t.Error("BeginImage() must not re-fetch a populated entry")
	}
}

func TestCompleteImage_Success(t *testing.T) {
	s := app.New()
	key := app.StepKey{Week: 2, Section: 0, Step: 3}
	s.BeginImage(key)

	s.CompleteImage(key, "image/png", []byte{0x89}, nil)

	entry, ok := s.ImageAt(key)
	if !ok || entry.Status != app.ImageReady {
		t.Fatalf("entry = %+v, want ready", entry)
	}
	if entry.MIMEType != "image/png" {
		t.Errorf("mime = %q", entry.MIMEType)
	}
}

func TestCompleteImage_FailureRevertsToAbsent(t *testing.T) {
	s := app.New()
	key := app.StepKey{Week: 1, Section: 0, Step: 1}
	s.BeginImage(key)

	s.CompleteImage(key, "", nil, errors.New("service unavailable"))

	if _, ok := s.ImageAt(key); ok {
		t.Error("failed entry must revert to absent")
	}
	if !s.BeginImage(key) {
		t.Error("retry after failure must issue a new request")
	}
}

func TestCompleteImage_EmptyPayloadRevertsToAbsent(t *testing.T) {
	s := app.New()
	key := app.StepKey{Week: 1, Section: 0, Step: 1}
	s.BeginImage(key)

	// Success response with no inline image: loading clears, nothing stored.
	s.CompleteImage(key, "image/png", nil, nil)

	if _, ok := s.ImageAt(key); ok {
		t.Error("empty payload must leave the entry absent")
	}
}

func TestCompleteImage_KeysAreIndependent(t *testing.T) {
	s := app.New()
	a := app.StepKey{Week: 1, Section: 0, Step: 1}
	b := app.StepKey{Week: 1, Section: 0, Step: 2}
	s.BeginImage(a)
	s.BeginImage(b)

	s.CompleteImage(a, "image/png", []byte{1}, nil)

	entryB, ok := s.ImageAt(b)
	if !ok || entryB.Status != app.ImageLoading {
		t.Errorf("completing key A touched key B: %+v", entryB)
	}
}

func TestImagePrompt_EmbedsStepAndStyle(t *testing.T) {
	p := app.ImagePrompt("Ground yourself", "Touch bare metal first.")

	for _, want := range []string{"Ground yourself", "Touch bare metal first.", "isometric", "educational"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q: %s", want, p)
		}
	}
}
