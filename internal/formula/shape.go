// internal/formula/shape.go
//
// Structural validation of postfix submissions.
//
// A postfix string of n operands and n-1 binary operators is well formed iff,
// reading left to right, the stack depth (operands pushed minus operators
// applied, each operator taking two values and leaving one) never drops below
// one once an operand is on the stack and ends at exactly one. Shapes derives
// every marker string satisfying that walk; for n = 4 this is the Catalan
// number C3 = 5:
//
//   xxxxooo  xxxoxoo  xxxooxo  xxoxxoo  xxoxoxo
//
// ValidateShape checks, failing fast in this order:
//   1. length is exactly 7
//   2. only 1–9 and + - * / appear (0 is rejected)
//   3. exactly 4 digits
//   4. marker string is one of the derived shapes

package formula

import (
	"strings"
	"sync"
)

const (
	// Operands is the number of digits in a submission.
	Operands = 4
	// Length of a postfix submission: Operands digits + Operands-1 operators.
	Length = 2*Operands - 1
)

var (
	shapesOnce sync.Once
	shapeSet   map[string]struct{}
	shapeList  []string
)

// Shapes enumerates the valid postfix marker strings for n operands, operands
// tried before operators at each step.
func Shapes(n int) []string {
	if n < 1 {
		return nil
	}
	var out []string
	buf := make([]byte, 0, 2*n-1)
	var walk func(pushed, applied, depth int)
	walk = func(pushed, applied, depth int) {
		if pushed == n && applied == n-1 {
			out = append(out, string(buf))
			return
		}
		if pushed < n {
			buf = append(buf, 'x')
			walk(pushed+1, applied, depth+1)
			buf = buf[:len(buf)-1]
		}
		if depth >= 2 {
			buf = append(buf, 'o')
			walk(pushed, applied+1, depth-1)
			buf = buf[:len(buf)-1]
		}
	}
	walk(0, 0, 0)
	return out
}

// ValidShapes returns the shapes accepted for 4-operand submissions.
func ValidShapes() []string {
	initShapes()
	return append([]string(nil), shapeList...)
}

func initShapes() {
	shapesOnce.Do(func() {
		shapeList = Shapes(Operands)
		shapeSet = make(map[string]struct{}, len(shapeList))
		for _, s := range shapeList {
			shapeSet[s] = struct{}{}
		}
	})
}

// ValidateShape reports whether formula is a structurally legal postfix
// combination of four digits and three operators. The returned error is a
// *ShapeError wrapping ErrLength, ErrCharacter, ErrOperandCount or ErrShape.
func ValidateShape(formula string) error {
	if len(formula) != Length {
		return &ShapeError{Formula: formula, Err: ErrLength}
	}
	digits := 0
	var marks strings.Builder
	for i := 0; i < len(formula); i++ {
		c := formula[i]
		switch {
		case c >= '1' && c <= '9':
			digits++
			marks.WriteByte('x')
		case isOperator(c):
			marks.WriteByte('o')
		default:
			return &ShapeError{Formula: formula, Err: ErrCharacter}
		}
	}
	if digits != Operands {
		return &ShapeError{Formula: formula, Err: ErrOperandCount}
	}
	initShapes()
	if _, ok := shapeSet[marks.String()]; !ok {
		return &ShapeError{Formula: formula, Err: ErrShape}
	}
	return nil
}
