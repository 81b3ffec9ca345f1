package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/chat"
	"github.com/calebhs/canvas/internal/errors"
	"github.com/calebhs/canvas/internal/profile"
)

// Slice keys. Each key holds one JSON-encoded value; there are exactly
// four, matching the persisted state slices of the application.
const (
	KeyBoard   = "notes"
	KeyProfile = "profile"
	KeyChat    = "chatMessages"
	KeyView    = "currentView"
)

// View selector values.
const (
	ViewIntake = "intake"
	ViewCanvas = "canvas"
)

// getSlice reads the raw JSON for a key. Missing keys return ("", false).
func getSlice(db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRow("SELECT value FROM slices WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewInternal(err)
	}
	return value, true, nil
}

// setSlice writes the raw JSON for a key, replacing any previous value.
func setSlice(db *sql.DB, key, value string) error {
	query := `
		INSERT INTO slices (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := db.Exec(query, key, value, time.Now().Unix()); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// saveJSON marshals v and stores it under key.
func saveJSON(db *sql.DB, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.NewInternal(err)
	}
	return setSlice(db, key, string(data))
}

// LoadBoard reads the board slice. A missing or malformed entry falls back
// to the empty six-category board; decode failures are never surfaced.
func LoadBoard(db *sql.DB) (board.Board, error) {
	raw, ok, err := getSlice(db, KeyBoard)
	if err != nil {
		return nil, err
	}
	b := board.New()
	if !ok {
		return b, nil
	}
	var stored board.Board
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return board.New(), nil
	}
	// Keep the enumeration total even if an older snapshot dropped a key.
	for cat, list := range stored {
		if cat.Valid() {
			b[cat] = list
		}
	}
	return b, nil
}

// SaveBoard writes the board slice.
func SaveBoard(db *sql.DB, b board.Board) error {
	return saveJSON(db, KeyBoard, b)
}

// LoadProfile reads the profile slice, defaulting to an empty profile.
func LoadProfile(db *sql.DB) (*profile.Profile, error) {
	raw, ok, err := getSlice(db, KeyProfile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return profile.New(), nil
	}
	p := profile.New()
	if err := json.Unmarshal([]byte(raw), p); err != nil {
		return profile.New(), nil
	}
	if p.HelpWith == nil {
		p.HelpWith = []string{}
	}
	return p, nil
}

// SaveProfile writes the profile slice.
func SaveProfile(db *sql.DB, p *profile.Profile) error {
	return saveJSON(db, KeyProfile, p)
}

// LoadChat reads the chat slice, defaulting to an empty state.
func LoadChat(db *sql.DB) (chat.State, error) {
	raw, ok, err := getSlice(db, KeyChat)
	if err != nil {
		return nil, err
	}
	if !ok {
		return chat.New(), nil
	}
	s := chat.New()
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return chat.New(), nil
	}
	return s, nil
}

// SaveChat writes the chat slice.
func SaveChat(db *sql.DB, s chat.State) error {
	return saveJSON(db, KeyChat, s)
}

// LoadView reads the current view selector, defaulting to the intake view.
func LoadView(db *sql.DB) (string, error) {
	raw, ok, err := getSlice(db, KeyView)
	if err != nil {
		return "", err
	}
	if !ok {
		return ViewIntake, nil
	}
	var view string
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		return ViewIntake, nil
	}
	if view != ViewIntake && view != ViewCanvas {
		return ViewIntake, nil
	}
	return view, nil
}

// SaveView writes the current view selector.
func SaveView(db *sql.DB, view string) error {
	return saveJSON(db, KeyView, view)
}

// Reset restores every slice to its documented default: intake view, empty
// profile, empty board, empty chat state.
func Reset(db *sql.DB) error {
	if err := SaveView(db, ViewIntake); err != nil {
		return err
	}
	if err := SaveProfile(db, profile.New()); err != nil {
		return err
	}
	if err := SaveBoard(db, board.New()); err != nil {
		return err
	}
	return SaveChat(db, chat.New())
}
