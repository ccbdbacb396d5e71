package app_test

import (
	"errors"
	"testing"

	"github.com/ilearncom/ilearncom/internal/app"
)

func TestBeginAsk_RejectsBlankInput(t *testing.T) {
	s := app.New()
	s.SetChatInput("   ")

	if _, _, ok := s.BeginAsk(); ok {
		t.Error("BeginAsk() should reject whitespace-only input")
	}
	if s.Chat.InFlight {
		t.Error("rejected ask must not set in-flight")
	}
}

func TestBeginAsk_RejectsWhileInFlight(t *testing.T) {
	s := app.New()
	s.SetChatInput("what is RAM?")

	_, token, ok := s.BeginAsk()
	if !ok {
		t.Fatal("first BeginAsk() rejected")
	}
	if _, _, ok := s.BeginAsk(); ok {
		t.Error("BeginAsk() should reject while a request is in flight")
	}

	s.CompleteAsk(token, "RAM is short-term memory.", nil)
	s.SetChatInput("and storage?")
	if _, _, ok := s.BeginAsk(); !ok {
		t.Error("BeginAsk() should work again after completion")
	}
}

func TestCompleteAsk_Success(t *testing.T) {
	s := app.New()
	s.SetChatInput("what is RAM?")
	_, token, _ := s.BeginAsk()

	s.CompleteAsk(token, "RAM is short-term memory.", nil)

	if s.Chat.Reply != "RAM is short-term memory." {
		t.Errorf("reply = %q", s.Chat.Reply)
	}
	if s.Chat.Input != "" {
		t.Errorf("input = %q, want cleared on success", s.Chat.Input)
	}
	if s.Chat.InFlight {
		t.Error("in-flight must be false after completion")
	}
}

func TestCompleteAsk_FailureKeepsInput(t *testing.T) {
	s := app.New()
	s.SetChatInput("what is RAM?")
	_, token, _ := s.BeginAsk()

	s.CompleteAsk(token, "", errors.New("network down"))

	if s.Chat.Input != "what is RAM?" {
		t.Errorf("input = %q, want original text preserved on failure", s.Chat.Input)
	}
	if s.Chat.Reply == "" {
		t.Error("failure must substitute the fallback reply")
	}
	if s.Chat.InFlight {
		t.Error("in-flight must be false after failure")
	}
}

func TestCompleteAsk_EmptyReplyGetsFallback(t *testing.T) {
	s := app.New()
	s.SetChatInput("hello?")
	_, token, _ := s.BeginAsk()

	s.CompleteAsk(token, "  ", nil)

	if s.Chat.Reply == "" || s.Chat.Reply == "  " {
		t.Errorf("reply = %q, want fallback text", s.Chat.Reply)
	}
	if s.Chat.Input != "" {
		t.Error("empty-but-successful reply still clears the input")
	}
}

func TestCompleteAsk_StaleTokenDiscarded(t *testing.T) {
	s := app.New()
	s.SetChatInput("first question")
	_, stale, _ := s.BeginAsk()

	// The first exchange resolves, then a second one starts.
	s.CompleteAsk(stale, "first answer", nil)
	s.SetChatInput("second question")
	_, current, _ := s.BeginAsk()

	// A late duplicate of the first completion must not apply.
	s.CompleteAsk(stale, "ghost of the first answer", nil)

	if s.Chat.Reply != "" {
		t.Errorf("stale completion applied: reply = %q", s.Chat.Reply)
	}
	if !s.Chat.InFlight {
		t.Error("current request must still be in flight")
	}

	s.CompleteAsk(current, "second answer", nil)
	if s.Chat.Reply != "second answer" {
		t.Errorf("reply = %q, want %q", s.Chat.Reply, "second answer")
	}
}
