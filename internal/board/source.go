package board

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// DigitSource yields uniformly distributed digits in [1,9].
type DigitSource interface {
	Digit() int
}

// CryptoSource draws digits from crypto/rand. It is the default for live games.
type CryptoSource struct{}

var nineBig = big.NewInt(MaxDigit - MinDigit + 1)

// Digit returns a random digit; on an entropy failure it falls back to math/rand.
func (CryptoSource) Digit() int {
	n, err := rand.Int(rand.Reader, nineBig)
	if err != nil {
		return MinDigit + mrand.IntN(MaxDigit-MinDigit+1)
	}
	return MinDigit + int(n.Int64())
}

// SeededSource is a deterministic PCG-backed source; equal seeds produce
// equal digit sequences. Not safe for concurrent use.
type SeededSource struct {
	r *mrand.Rand
}

// NewSeededSource builds a SeededSource from a 128-bit seed.
func NewSeededSource(hi, lo uint64) *SeededSource {
	return &SeededSource{r: mrand.New(mrand.NewPCG(hi, lo))}
}

// Digit returns the next digit of the sequence.
func (s *SeededSource) Digit() int {
	return MinDigit + s.r.IntN(MaxDigit-MinDigit+1)
}

// Sequence replays fixed digits in order, cycling when exhausted. Useful
// where exact regenerated boards matter.
type Sequence struct {
	digits []int
	next   int
}

// NewSequence returns a Sequence over digits. It panics on an empty list.
func NewSequence(digits ...int) *Sequence {
	if len(digits) == 0 {
		panic("board: empty digit sequence")
	}
	return &Sequence{digits: append([]int(nil), digits...)}
}

// Digit returns the next digit in the sequence.
func (s *Sequence) Digit() int {
	d := s.digits[s.next%len(s.digits)]
	s.next++
	return d
}
