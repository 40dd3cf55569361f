// Package assistant owns the geography-assistant conversation: the
// ordered turn log, the single-outstanding-request rule, and the
// Gemini client that answers the questions.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Biniyan/sociomap/internal/model"
)

// Apology is appended in place of a reply when the remote call fails.
// Failures are never surfaced to the caller as errors.
const Apology = "माफ गर्नुहोस्, मलाई अहिले केही समस्या भइरहेको छ। कृपया पछि फेरि प्रयास गर्नुहोस्।"

// ErrBusy is returned while a previous question is still awaiting its
// reply. Submissions are rejected, not queued.
var ErrBusy = errors.New("assistant: a question is already awaiting its reply")

// Responder answers a single user question. The remote collaborator is
// opaque to the session; it only exchanges text.
type Responder interface {
	Ask(ctx context.Context, text string) (string, error)
}

// Unavailable stands in for the remote collaborator when no API key is
// configured. Every question fails, so the session answers with the
// apology instead of crashing the rest of the app.
type Unavailable struct{}

func (Unavailable) Ask(ctx context.Context, text string) (string, error) {
	return "", errors.New("assistant: GEMINI_API_KEY not configured")
}

// Session is the conversation state machine: idle, or awaiting one
// reply. It exclusively owns the turn log.
type Session struct {
	responder Responder

	// Logf, if set, receives operator diagnostics for swallowed
	// remote failures.
	Logf func(format string, args ...any)

	mu      sync.Mutex
	turns   []model.ConversationTurn
	pending bool
}

// NewSession creates an idle session with an empty log.
func NewSession(r Responder) *Session {
	return &Session{responder: r}
}

// Submit sends one user question and appends both the user turn and
// the eventual assistant turn. Whitespace-only text is a no-op. While
// a reply is outstanding, Submit returns ErrBusy and changes nothing.
// A failed remote call appends Apology instead of a reply; the
// underlying error is swallowed.
func (s *Session) Submit(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return ErrBusy
	}
	s.pending = true
	s.turns = append(s.turns, model.ConversationTurn{Role: model.RoleUser, Text: text})
	s.mu.Unlock()

	reply, err := s.responder.Ask(ctx, text)
	if err != nil {
		if s.Logf != nil {
			s.Logf("assistant request failed: %v", err)
		}
		reply = Apology
	}

	s.mu.Lock()
	s.turns = append(s.turns, model.ConversationTurn{Role: model.RoleAssistant, Text: reply})
	s.pending = false
	s.mu.Unlock()

	return nil
}

// Turns returns a copy of the conversation log in order.
func (s *Session) Turns() []model.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ConversationTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Pending reports whether a reply is outstanding.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Reset clears the conversation log. The pending flag is left alone:
// an in-flight reply is still applied when it arrives.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}
