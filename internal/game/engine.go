// internal/game/engine.go
//
// Game engine for a single make10 session.
// Responsibilities:
//   - Create new games with a freshly drawn 4x4 board.
//   - Judge formulas and clear the first matching scoring area.
//   - Track score, board version and submission count.
//   - Offer hints using the brute-force solver.
//
// Notes:
//   - Formulas are infix as typed by the player ("(9+1)*(2-1)").
//   - The board's digit source is fixed at creation; tests pass a
//     board.Sequence, the daily mode a seeded source.
//   - randomID() is a compact hex identifier for correlating server state.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/make10/internal/board"
	"github.com/robalobadob/make10/internal/formula"
)

// ErrNoSource is returned by Submit on a Game built without New.
var ErrNoSource = errors.New("game has no digit source")

// New constructs a new game whose board (and every regenerated area) is drawn
// from src. A nil src uses board.CryptoSource.
func New(src board.DigitSource) *Game {
	m := board.NewMatcher(src)
	return &Game{
		ID:      randomID(),
		Board:   board.New(m.Source),
		Version: 1,
		Started: time.Now().UTC(),
		matcher: m,
	}
}

// Submit judges an infix formula against the board. On a win whose digits
// match an area, that area is regenerated, Score and Version go up and the
// returned Input is empty. Any other verdict leaves the board untouched and
// echoes the formula.
func (g *Game) Submit(expr string) (Submission, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.matcher == nil {
		return Submission{}, ErrNoSource
	}
	g.Submissions++
	res := g.matcher.ApplyIfMatch(&g.Board, expr)
	if res.Cleared() {
		g.Score++
		g.Version++
		g.Cleared = append(g.Cleared, res.Area)
		log.Debug().Str("gameId", g.ID).Str("area", res.Area).Int("score", g.Score).Msg("area cleared")
	}
	return Submission{
		Outcome: res.Outcome,
		Input:   res.Input,
		Area:    res.Area,
		Board:   res.Board,
		Version: g.Version,
	}, nil
}

// Hint returns the first area (scan order) whose digits can make 10, with a
// formula for it. ok is false when no area on the board is solvable.
func (g *Game) Hint() (Hint, bool) {
	g.mu.Lock()
	b := g.Board
	g.mu.Unlock()
	return HintFor(&b)
}

// HintFor finds a clearable area on b.
func HintFor(b *board.Board) (Hint, bool) {
	for _, a := range board.Areas {
		if postfix, ok := formula.Solve(b.Values(a)); ok {
			return Hint{Area: a.Name, Formula: formula.ToInfix(postfix)}, true
		}
	}
	return Hint{}, false
}

// Snapshot returns a copy of the game's public state, safe to encode while
// other requests keep submitting.
func (g *Game) Snapshot() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return State{
		ID:          g.ID,
		Board:       g.Board,
		Version:     g.Version,
		Score:       g.Score,
		Submissions: g.Submissions,
		Cleared:     append([]string(nil), g.Cleared...),
		Started:     g.Started,
	}
}

// randomID returns a compact 16‑hex‑char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
