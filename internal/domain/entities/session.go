package entities

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies the author of a chat turn
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatTurn is one message of the chat history
type ChatTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Session represents one browser session and its working state
type Session struct {
	ID         uuid.UUID   `json:"id"`
	Transcript *Transcript `json:"transcript,omitempty"`
	History    []ChatTurn  `json:"history"`
	CreatedAt  time.Time   `json:"created_at"`
	ExpiresAt  time.Time   `json:"expires_at"`
	LastUsedAt *time.Time  `json:"last_used_at,omitempty"`
}

// NewSession creates a new session
func NewSession(id uuid.UUID, expiresAt time.Time) *Session {
	return &Session{
		ID:        id,
		History:   []ChatTurn{},
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
}

// IsExpired checks if session is expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// HasTranscript reports whether a transcript is loaded
func (s *Session) HasTranscript() bool {
	return s != nil && !s.Transcript.IsEmpty()
}

// ReplaceTranscript swaps in a new transcript wholesale and starts a fresh conversation
func (s *Session) ReplaceTranscript(t *Transcript) {
	s.Transcript = t
	s.History = []ChatTurn{}
}

// AppendExchange records a question and its answer
func (s *Session) AppendExchange(question, answer string) {
	s.History = append(s.History,
		ChatTurn{Role: ChatRoleUser, Content: question},
		ChatTurn{Role: ChatRoleAssistant, Content: answer},
	)
}

// ClearHistory drops all chat turns
func (s *Session) ClearHistory() {
	s.History = []ChatTurn{}
}

// UpdateLastUsed updates the last used timestamp
func (s *Session) UpdateLastUsed() {
	now := time.Now()
	s.LastUsedAt = &now
}

// Clone returns a copy that shares no slices with s
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.History = append([]ChatTurn{}, s.History...)
	if s.LastUsedAt != nil {
		t := *s.LastUsedAt
		c.LastUsedAt = &t
	}
	return &c
}
