// internal/formula/solve.go
//
// Brute-force solver for a four-digit hand.
//
// Search order (deterministic):
//   - digit orderings in ascending lexicographic order, duplicates skipped
//   - shapes in ValidShapes order
//   - operator triples over "+-*/" in that order
//
// Each candidate is a 7-character postfix string judged by the same
// EvaluatePostfix + Classify path players go through.

package formula

import "sort"

const operatorSet = "+-*/"

// Solutions returns every postfix formula over digits that evaluates to 10.
// Digits outside 1–9 yield no solutions.
func Solutions(digits [Operands]int) []string {
	var out []string
	search(digits, func(s string) bool {
		out = append(out, s)
		return true
	})
	return out
}

// Solve returns the first postfix formula over digits that evaluates to 10.
func Solve(digits [Operands]int) (string, bool) {
	var found string
	search(digits, func(s string) bool {
		found = s
		return false
	})
	return found, found != ""
}

// Solvable reports whether some formula over digits makes 10.
func Solvable(digits [Operands]int) bool {
	_, ok := Solve(digits)
	return ok
}

// search calls yield for each winning formula until yield returns false.
func search(digits [Operands]int, yield func(string) bool) {
	perm := append([]int(nil), digits[:]...)
	for _, d := range perm {
		if d < 1 || d > 9 {
			return
		}
	}
	sort.Ints(perm)

	shapes := ValidShapes()
	buf := make([]byte, Length)
	ops := make([]byte, Operands-1)
	for {
		for _, shape := range shapes {
			for combo := 0; combo < pow(len(operatorSet), len(ops)); combo++ {
				n := combo
				for k := len(ops) - 1; k >= 0; k-- {
					ops[k] = operatorSet[n%len(operatorSet)]
					n /= len(operatorSet)
				}
				di, oi := 0, 0
				for i := 0; i < len(shape); i++ {
					if shape[i] == 'x' {
						buf[i] = byte('0' + perm[di])
						di++
					} else {
						buf[i] = ops[oi]
						oi++
					}
				}
				v, err := EvaluatePostfix(Tokenize(string(buf)))
				if err == nil && Classify(v) == OutcomeTen {
					if !yield(string(buf)) {
						return
					}
				}
			}
		}
		if !nextPermutation(perm) {
			return
		}
	}
}

func pow(b, e int) int {
	r := 1
	for i := 0; i < e; i++ {
		r *= b
	}
	return r
}

// nextPermutation rearranges p into its lexicographic successor, reporting
// false when p is already the last ordering. Equal elements are not swapped
// with each other, so duplicate orderings are never produced.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
