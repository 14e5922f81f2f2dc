// internal/game/types.go
//
// Core type definitions for a make10 play session.
// Defines:
//   - Submission: the verdict for one formula sent by the player.
//   - Hint: a clearable area plus a formula that clears it.
//   - Game: state for a single session (board, score, history).

package game

import (
	"sync"
	"time"

	"github.com/robalobadob/make10/internal/board"
	"github.com/robalobadob/make10/internal/formula"
)

// Submission is what the player gets back for one formula.
type Submission struct {
	Outcome formula.Outcome // "10" | "Not 10" | "Not an integer" | "Invalid input"
	Input   string          // "" when consumed, otherwise the formula echoed back
	Area    string          // cleared area name, "" if nothing cleared
	Board   board.Board     // board after the submission
	Version int             // board version after the submission
}

// Hint points at an area that can be cleared right now.
type Hint struct {
	Area    string // area name (scan order: rows, columns, diagonals, blocks)
	Formula string // an infix formula over that area's digits that makes 10
}

// State is a point-in-time copy of a Game.
type State struct {
	ID          string
	Board       board.Board
	Version     int
	Score       int
	Submissions int
	Cleared     []string
	Started     time.Time
}

// Game holds the state of a single make10 session.
// The board is owned by the Game; all mutation goes through Submit.
type Game struct {
	ID          string      // Unique game identifier (random hex string).
	Board       board.Board // Current 4x4 board.
	Version     int         // Bumped every time an area is regenerated.
	Score       int         // Number of areas cleared.
	Submissions int         // Number of formulas submitted.
	Cleared     []string    // Names of cleared areas, oldest first.
	Started     time.Time   // Session start (UTC).

	mu      sync.Mutex
	matcher *board.Matcher
}
