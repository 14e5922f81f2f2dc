package board

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/make10/internal/formula"
)

func sampleBoard() Board {
	return Board{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 1, 2, 3,
		4, 5, 6, 7,
	}
}

func TestApplyIfMatchRegeneratesArea(t *testing.T) {
	b := sampleBoard()
	m := NewMatcher(NewSequence(9))

	res := m.ApplyIfMatch(&b, "1+2+3+4")

	assert.Equal(t, "", res.Input)
	assert.Equal(t, "row-1", res.Area)
	assert.True(t, res.Cleared())
	assert.Equal(t, formula.OutcomeTen, res.Outcome)
	want := sampleBoard()
	want[0], want[1], want[2], want[3] = 9, 9, 9, 9
	assert.Equal(t, want, b)
	assert.Equal(t, want, res.Board)
}

func TestApplyIfMatchFirstAreaWins(t *testing.T) {
	b := Board{
		1, 2, 3, 4,
		5, 6, 7, 8,
		4, 3, 2, 1,
		9, 9, 9, 9,
	}
	m := NewMatcher(NewSequence(5, 6, 7, 8))

	res := m.ApplyIfMatch(&b, "(4+3)+(2+1)")

	assert.Equal(t, "row-1", res.Area)
	assert.Equal(t, Board{
		5, 6, 7, 8,
		5, 6, 7, 8,
		4, 3, 2, 1,
		9, 9, 9, 9,
	}, b)
}

func TestApplyIfMatchLaterArea(t *testing.T) {
	b := sampleBoard()
	m := NewMatcher(NewSequence(1))

	// 1 5 9 4 down the first column
	res := m.ApplyIfMatch(&b, "(9-4)*(5-1)-10")
	assert.Equal(t, formula.OutcomeInvalid, res.Outcome)

	res = m.ApplyIfMatch(&b, "9+5-4*1")
	assert.Equal(t, formula.OutcomeTen, res.Outcome)
	assert.Equal(t, "col-1", res.Area)
	for _, c := range Areas[4].Cells {
		assert.Equal(t, 1, b[c])
	}
}

func TestApplyIfMatchLeavesBoardAlone(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		outcome formula.Outcome
	}{
		{"not ten", "(9+1)*(2+8)", formula.OutcomeNotTen},
		{"not an integer", "(1+2)/4+5", formula.OutcomeNotInteger},
		{"invalid", "1234+++", formula.OutcomeInvalid},
		{"no matching area", "5+5*1*1", formula.OutcomeTen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBoard()
			res := NewMatcher(NewSequence(9)).ApplyIfMatch(&b, tt.formula)
			assert.Equal(t, tt.formula, res.Input)
			assert.Equal(t, tt.outcome, res.Outcome)
			assert.False(t, res.Cleared())
			assert.Equal(t, sampleBoard(), b)
			assert.Equal(t, sampleBoard(), res.Board)
		})
	}
}

func TestNewMatcherDefaultsToCrypto(t *testing.T) {
	m := NewMatcher(nil)
	assert.IsType(t, CryptoSource{}, m.Source)
}

func TestMatch(t *testing.T) {
	b := sampleBoard()
	a, ok := b.Match([]int{1, 2, 6, 7})
	assert.True(t, ok)
	assert.Equal(t, "diag-main", a.Name)

	_, ok = b.Match([]int{1, 1, 5, 5})
	assert.False(t, ok)
	_, ok = b.Match([]int{1, 2, 3})
	assert.False(t, ok)
}

func TestMatcherProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4321)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("first matching area is regenerated, everything else kept", prop.ForAll(
		func(cells []int, pick int, seed uint64) bool {
			if len(cells) != Cells || pick < 0 || pick >= len(Areas) {
				return true
			}
			var b Board
			copy(b[:], cells)
			values := b.Values(Areas[pick])
			postfix, ok := formula.Solve(values)
			if !ok {
				return true
			}
			expected, _ := b.Match(values[:])
			before := b

			res := NewMatcher(NewSeededSource(seed, 0)).ApplyIfMatch(&b, formula.ToInfix(postfix))
			if res.Input != "" || res.Area != expected.Name || res.Board != b {
				return false
			}
			inArea := map[int]bool{}
			for _, c := range expected.Cells {
				inArea[c] = true
			}
			for i := range b {
				if inArea[i] {
					if b[i] < MinDigit || b[i] > MaxDigit {
						return false
					}
				} else if b[i] != before[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(Cells, gen.IntRange(MinDigit, MaxDigit)),
		gen.IntRange(0, len(Areas)-1),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
