package board

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Source indicates where an idea originated.
type Source string

const (
	SourceManual Source = "manual"
	SourceAI     Source = "ai"
)

// Idea is a single card on the canvas.
type Idea struct {
	// ID is a ULID that uniquely identifies this idea
	ID string `json:"id"`

	// Text is the idea content, always trimmed and non-empty
	Text string `json:"text"`

	// Priority marks the idea as starred
	Priority bool `json:"priority"`

	// Source records how the idea was created ("manual" or "ai")
	Source Source `json:"source"`
}

// Board maps each category to its ordered idea list.
// Insertion order is significant; there is no reordering operation.
type Board map[Category][]Idea

// New returns a board with an empty idea list for every category.
func New() Board {
	b := make(Board, len(All()))
	for _, cat := range All() {
		b[cat.ID] = []Idea{}
	}
	return b
}

// AddIdea appends a new idea to the category's list.
// Whitespace-only text is rejected; the returned bool reports whether an
// idea was actually added.
func (b Board) AddIdea(cat Category, text string, source Source) (Idea, bool) {
	text = strings.TrimSpace(text)
	if text == "" || !cat.Valid() {
		return Idea{}, false
	}
	idea := Idea{
		ID:       newID(),
		Text:     text,
		Priority: false,
		Source:   source,
	}
	b[cat] = append(b[cat], idea)
	return idea, true
}

// RemoveIdea deletes the matching idea. Missing ideas are a no-op.
func (b Board) RemoveIdea(cat Category, ideaID string) bool {
	list := b[cat]
	for i, idea := range list {
		if idea.ID == ideaID {
			b[cat] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleStar flips the priority flag on the matching idea.
func (b Board) ToggleStar(cat Category, ideaID string) (Idea, bool) {
	list := b[cat]
	for i := range list {
		if list[i].ID == ideaID {
			list[i].Priority = !list[i].Priority
			return list[i], true
		}
	}
	return Idea{}, false
}

// EditIdea replaces the idea's text. An edit that trims to empty is
// discarded and the original text is kept.
func (b Board) EditIdea(cat Category, ideaID, newText string) (Idea, bool) {
	newText = strings.TrimSpace(newText)
	if newText == "" {
		return Idea{}, false
	}
	list := b[cat]
	for i := range list {
		if list[i].ID == ideaID {
			list[i].Text = newText
			return list[i], true
		}
	}
	return Idea{}, false
}

// BulkAppend appends AI-generated ideas per category. Categories absent from
// the argument are untouched; unknown category keys are dropped. This is
// additive: regenerating against a populated board accumulates ideas.
// Returns the number of ideas added.
func (b Board) BulkAppend(ideas map[Category][]string) int {
	added := 0
	for cat, texts := range ideas {
		if !cat.Valid() {
			continue
		}
		for _, text := range texts {
			if _, ok := b.AddIdea(cat, text, SourceAI); ok {
				added++
			}
		}
	}
	return added
}

// Ideas returns the category's idea list.
func (b Board) Ideas(cat Category) []Idea {
	return b[cat]
}

// TotalCount returns the number of ideas across all categories.
func (b Board) TotalCount() int {
	total := 0
	for _, list := range b {
		total += len(list)
	}
	return total
}

// PriorityCount returns the number of starred ideas across all categories.
func (b Board) PriorityCount() int {
	count := 0
	for _, list := range b {
		for _, idea := range list {
			if idea.Priority {
				count++
			}
		}
	}
	return count
}

// newID generates a new ULID.
func newID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
