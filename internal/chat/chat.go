package chat

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/calebhs/canvas/internal/board"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in a category's brainstorm transcript.
type Message struct {
	// ID is a ULID that uniquely identifies this message
	ID string `json:"id"`

	// Role is "user" or "assistant"
	Role Role `json:"role"`

	// Content is the message text
	Content string `json:"content"`

	// Suggestions holds assistant ideas not yet accepted onto the board.
	// nil means no pending suggestions; accepted strings are removed from
	// this message only, never from other messages.
	Suggestions []string `json:"suggestions,omitempty"`
}

// State maps categories to their transcripts. Transcripts are lazily
// created the first time a category's conversation is opened.
type State map[board.Category][]Message

// New returns an empty chat state.
func New() State {
	return State{}
}

// Greeting renders the seeded assistant message for a category.
func Greeting(cat board.Category) string {
	return fmt.Sprintf("Let's explore %s ideas for your role. What specific challenges or opportunities come to mind?",
		strings.ToLower(cat.Title()))
}

// Open returns the category's transcript, seeding it with the greeting on
// first open. The returned bool reports whether seeding happened.
func (s State) Open(cat board.Category) ([]Message, bool) {
	if msgs, ok := s[cat]; ok {
		return msgs, false
	}
	seeded := []Message{{
		ID:      newID(),
		Role:    RoleAssistant,
		Content: Greeting(cat),
	}}
	s[cat] = seeded
	return seeded, true
}

// AppendUser appends a user turn and returns it.
func (s State) AppendUser(cat board.Category, content string) Message {
	msg := Message{ID: newID(), Role: RoleUser, Content: content}
	s[cat] = append(s[cat], msg)
	return msg
}

// AppendAssistant appends an assistant turn with optional pending
// suggestions and returns it.
func (s State) AppendAssistant(cat board.Category, content string, suggestions []string) Message {
	msg := Message{ID: newID(), Role: RoleAssistant, Content: content, Suggestions: suggestions}
	s[cat] = append(s[cat], msg)
	return msg
}

// Messages returns the category's transcript without seeding.
func (s State) Messages(cat board.Category) []Message {
	return s[cat]
}

// ConsumeSuggestion removes one pending suggestion string from the given
// message. Other messages keep textually identical suggestions. Returns
// false if the message or suggestion is absent.
func (s State) ConsumeSuggestion(cat board.Category, messageID, suggestion string) bool {
	msgs := s[cat]
	for i := range msgs {
		if msgs[i].ID != messageID {
			continue
		}
		for j, pending := range msgs[i].Suggestions {
			if pending == suggestion {
				remaining := append(msgs[i].Suggestions[:j:j], msgs[i].Suggestions[j+1:]...)
				if len(remaining) == 0 {
					remaining = nil
				}
				msgs[i].Suggestions = remaining
				return true
			}
		}
		return false
	}
	return false
}

// newID generates a new ULID.
func newID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
