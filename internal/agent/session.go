// ABOUTME: Conversation sessions and the per-room session map
// ABOUTME: The front-end owns a Sessions instance and hands sessions to the agent by handle

package agent

import (
	"sync"
)

// Message is one entry in a conversation history.
type Message struct {
	Role      string // "user", "model", or "tool"
	Content   string
	ToolCalls []ToolCall // set on model messages that requested tools
	ToolName  string     // set on tool result messages
}

// Session holds the conversation history for one room.
type Session struct {
	mu       sync.Mutex
	id       string
	messages []Message
}

// NewSession creates an empty session for the given room or chat ID.
func NewSession(id string) *Session {
	return &Session{id: id}
}

// ID returns the room or chat identifier this session belongs to.
func (s *Session) ID() string {
	return s.id
}

// Append adds a message to the history.
func (s *Session) Append(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

// History returns a copy of the conversation so far.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Reset discards the conversation history.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// Len returns the number of messages in the history.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Sessions is a map of room ID to session. The front-end owns one instance
// and passes individual sessions into the agent per turn.
type Sessions struct {
	mu     sync.Mutex
	byRoom map[string]*Session
}

// NewSessions creates an empty session map.
func NewSessions() *Sessions {
	return &Sessions{byRoom: make(map[string]*Session)}
}

// Get returns the session for a room, creating it on first use.
func (s *Sessions) Get(roomID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byRoom[roomID]
	if !ok {
		sess = NewSession(roomID)
		s.byRoom[roomID] = sess
	}
	return sess
}

// Reset clears the history for a room, keeping the session handle valid.
func (s *Sessions) Reset(roomID string) {
	s.mu.Lock()
	sess, ok := s.byRoom[roomID]
	s.mu.Unlock()
	if ok {
		sess.Reset()
	}
}
