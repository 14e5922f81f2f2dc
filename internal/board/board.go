// internal/board/board.go
//
// The 4x4 make10 board and its scoring areas.
//
// Layout (row-major indices):
//
//	 0  1  2  3
//	 4  5  6  7
//	 8  9 10 11
//	12 13 14 15
//
// Areas are scanned in a fixed order: rows, columns, the two diagonals, then
// the four corner 2x2 blocks. Areas overlap; every area has four distinct cells.

package board

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// Side is the board width and height.
	Side = 4
	// Cells is the number of cells on the board.
	Cells = Side * Side
	// MinDigit and MaxDigit bound every cell value.
	MinDigit = 1
	MaxDigit = 9
)

// Board holds one digit per cell. Callers own it; the Matcher mutates it in place.
type Board [Cells]int

// Area is a named group of four cells.
type Area struct {
	Name  string
	Cells [4]int
}

// Areas lists the scoring areas in scan order.
var Areas = [...]Area{
	{"row-1", [4]int{0, 1, 2, 3}},
	{"row-2", [4]int{4, 5, 6, 7}},
	{"row-3", [4]int{8, 9, 10, 11}},
	{"row-4", [4]int{12, 13, 14, 15}},
	{"col-1", [4]int{0, 4, 8, 12}},
	{"col-2", [4]int{1, 5, 9, 13}},
	{"col-3", [4]int{2, 6, 10, 14}},
	{"col-4", [4]int{3, 7, 11, 15}},
	{"diag-main", [4]int{0, 5, 10, 15}},
	{"diag-anti", [4]int{3, 6, 9, 12}},
	{"block-top-left", [4]int{0, 1, 4, 5}},
	{"block-top-right", [4]int{2, 3, 6, 7}},
	{"block-bottom-left", [4]int{8, 9, 12, 13}},
	{"block-bottom-right", [4]int{10, 11, 14, 15}},
}

// AreaByName looks up an area.
func AreaByName(name string) (Area, bool) {
	for _, a := range Areas {
		if a.Name == name {
			return a, true
		}
	}
	return Area{}, false
}

// New fills a board with digits drawn from src.
func New(src DigitSource) Board {
	var b Board
	for i := range b {
		b[i] = src.Digit()
	}
	return b
}

// Values returns the area's four cell values, sorted ascending.
func (b *Board) Values(a Area) [4]int {
	var v [4]int
	for i, c := range a.Cells {
		v[i] = b[c]
	}
	sort.Ints(v[:])
	return v
}

// Regenerate overwrites every cell of a with a fresh draw from src.
// The new value may equal the old one.
func (b *Board) Regenerate(a Area, src DigitSource) {
	for _, c := range a.Cells {
		b[c] = src.Digit()
	}
}

// Valid reports whether every cell holds a digit in [1,9].
func (b *Board) Valid() bool {
	for _, v := range b {
		if v < MinDigit || v > MaxDigit {
			return false
		}
	}
	return true
}

// Rows returns the board as a 4x4 grid.
func (b *Board) Rows() [Side][Side]int {
	var g [Side][Side]int
	for i, v := range b {
		g[i/Side][i%Side] = v
	}
	return g
}

// String renders the board as four space-separated lines.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
	}
	return sb.String()
}
