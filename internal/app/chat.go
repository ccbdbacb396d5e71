package app

import "strings"

// TutorPersona is the fixed system instruction for the tutor chat: a
// friendly classmate who is great with computers and explains things the
// way a study buddy would.
const TutorPersona = "You are the user's close classmate at a vocational school, and you happen to be " +
	"great with computers. You love sharing what you know. Talk casually, like friends chatting " +
	"between classes, call the user 'friend', explain computer topics in the simplest possible " +
	"terms, crack the occasional light joke, and keep learning fun. Keep answers short and " +
	"conversational; this is a chat, not a lecture."

// Fixed in-persona replies substituted when the service fails or returns
// nothing usable. Never surfaced as errors.
const (
	chatFallbackEmpty = "Sorry friend, my mind just went blank. Ask me that one more time?"
	chatFallbackError = "Whoa, something glitched on my end. Give me a second and ask again!"
)

// ChatSession is the single-turn tutor chat: input text, an in-flight
// flag gating concurrent requests, and the last reply.
type ChatSession struct {
	Input    string `json:"input"`
	InFlight bool   `json:"in_flight"`
	Reply    string `json:"reply"`
	Token    int    `json:"token"` // generation counter for stale-reply rejection
}

// SetChatInput records what the user has typed so far.
func (s *State) SetChatInput(text string) {
	s.Chat.Input = text
}

// BeginAsk starts a chat exchange. It returns the prompt to send and the
// generation token to complete with. ok is false, and nothing changes, when
// a request is already in flight or the input is blank.
func (s *State) BeginAsk() (prompt string, token int, ok bool) {
	if s.Chat.InFlight || strings.TrimSpace(s.Chat.Input) == "" {
		return "", 0, false
	}
	s.Chat.Token++
	s.Chat.InFlight = true
	s.Chat.Reply = ""
	return s.Chat.Input, s.Chat.Token, true
}

// CompleteAsk applies the outcome of a chat exchange. A completion whose
// token no longer matches the session is discarded silently (it belongs to
// an abandoned request). On failure the input stays put so the user can
// retry; on success the input is cleared, with an empty reply replaced by
// the fixed fallback. The in-flight flag always ends false.
func (s *State) CompleteAsk(token int, reply string, err error) {
	if token != s.Chat.Token {
		return
	}

	if err != nil {
		s.Chat.Reply = chatFallbackError
	} else {
		if strings.TrimSpace(reply) == "" {
			reply = chatFallbackEmpty
		}
		s.Chat.Reply = reply
		s.Chat.Input = ""
	}
	s.Chat.InFlight = false
}
