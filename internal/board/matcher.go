// internal/board/matcher.go
//
// Scoring-area matcher.
//
// ApplyIfMatch:
//   1. Judges the formula (infix) with formula.Check; anything but "10"
//      leaves the board alone and echoes the formula back as Input.
//   2. Sorts the formula's digits and compares them with each area's sorted
//      values, in Areas order.
//   3. The first equal area is regenerated from the Matcher's source and
//      Input comes back empty ("consumed"). Later areas with the same
//      multiset are left untouched.
//   4. No equal area: board unchanged, formula echoed.
//
// The read-then-write is not atomic; callers sharing a Board across
// goroutines must serialize calls themselves.

package board

import (
	"github.com/robalobadob/make10/internal/formula"
)

// Result is the outcome of one ApplyIfMatch call.
type Result struct {
	Board   Board           // board after the call (a copy of *b)
	Input   string          // "" when the formula was consumed, else the formula
	Outcome formula.Outcome // verdict of the win check
	Area    string          // name of the regenerated area, "" if none
}

// Cleared reports whether an area was regenerated.
func (r Result) Cleared() bool { return r.Area != "" }

// Matcher regenerates matched areas from Source.
type Matcher struct {
	Source DigitSource
}

// NewMatcher returns a Matcher drawing from src; nil means CryptoSource.
func NewMatcher(src DigitSource) *Matcher {
	if src == nil {
		src = CryptoSource{}
	}
	return &Matcher{Source: src}
}

// Match returns the first area (scan order) whose sorted values equal digits.
func (b *Board) Match(digits []int) (Area, bool) {
	if len(digits) != 4 {
		return Area{}, false
	}
	for _, a := range Areas {
		v := b.Values(a)
		equal := true
		for i := range v {
			if v[i] != digits[i] {
				equal = false
				break
			}
		}
		if equal {
			return a, true
		}
	}
	return Area{}, false
}

// ApplyIfMatch regenerates the first area whose digits the winning formula
// uses. b must be non-nil.
func (m *Matcher) ApplyIfMatch(b *Board, expr string) Result {
	res := Result{Input: expr, Outcome: formula.Check(expr)}
	if !res.Outcome.Won() {
		res.Board = *b
		return res
	}
	area, ok := b.Match(formula.Digits(expr))
	if !ok {
		res.Board = *b
		return res
	}
	b.Regenerate(area, m.Source)
	res.Board = *b
	res.Input = ""
	res.Area = area.Name
	return res
}
