// internal/formula/check.go
//
// End-to-end verdicts for a submission.
//
// Two entry points exist:
//   - CheckFormula / AnalyzePostfix take the raw postfix form ("91+28+*").
//   - Check / Analyze take infix as typed by a player ("(9+1)*(2+8)"),
//     convert it once, and hold the derived postfix to the same shape rules.
//
// Outcomes mirror the strings shown to players: "10", "Not 10",
// "Not an integer", "Invalid input".

package formula

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strconv"
)

// Target is the value a winning formula must reach.
const Target = 10

// Tolerance for treating a float result as an integer.
const Tolerance = 1e-9

// Outcome is the verdict for one submission.
type Outcome string

const (
	OutcomeTen        Outcome = "10"
	OutcomeNotTen     Outcome = "Not 10"
	OutcomeNotInteger Outcome = "Not an integer"
	OutcomeInvalid    Outcome = "Invalid input"
)

// Won reports whether the outcome is a winning one.
func (o Outcome) Won() bool { return o == OutcomeTen }

// ErrMultiDigit marks an infix expression whose operands are not all single digits.
var ErrMultiDigit = errors.New("operands must be single digits 1-9")

// Report is the full trace of one verdict.
type Report struct {
	Input   string  // submission as received
	Postfix string  // postfix form that was evaluated ("" if conversion failed)
	Value   float64 // raw result; meaningful only when Err is nil
	Outcome Outcome
	Err     error // *ShapeError, *EvalError or *ParseError when Outcome is invalid
}

// Classify maps a raw result to an outcome. A value more than Tolerance away
// from its nearest integer is OutcomeNotInteger; NaN and ±Inf always are.
func Classify(v float64) Outcome {
	r := math.Round(v)
	if !(math.Abs(v-r) <= Tolerance) {
		return OutcomeNotInteger
	}
	if r == Target {
		return OutcomeTen
	}
	return OutcomeNotTen
}

// AnalyzePostfix validates, evaluates and classifies a postfix submission.
func AnalyzePostfix(postfix string) Report {
	rep := Report{Input: postfix, Outcome: OutcomeInvalid}
	if err := ValidateShape(postfix); err != nil {
		rep.Err = err
		return rep
	}
	rep.Postfix = postfix
	v, err := EvaluatePostfix(Tokenize(postfix))
	if err != nil {
		rep.Err = err
		return rep
	}
	rep.Value = v
	rep.Outcome = Classify(v)
	return rep
}

// CheckFormula is the verdict for a postfix submission.
func CheckFormula(postfix string) Outcome {
	return AnalyzePostfix(postfix).Outcome
}

// Analyze converts an infix submission and analyzes the derived postfix.
func Analyze(infix string) Report {
	p, err := ToPostfix(infix)
	if err != nil {
		return Report{Input: infix, Outcome: OutcomeInvalid, Err: err}
	}
	// "12" as one operand would re-tokenize as two digits; reject it here.
	if len(p) != len(p.String()) {
		return Report{Input: infix, Outcome: OutcomeInvalid, Err: &ShapeError{Formula: p.String(), Err: ErrMultiDigit}}
	}
	rep := AnalyzePostfix(p.String())
	rep.Input = infix
	return rep
}

// Check is the verdict for an infix submission.
func Check(infix string) Outcome {
	return Analyze(infix).Outcome
}

var digitRe = regexp.MustCompile(`[1-9]`)

// Digits extracts every 1–9 character of s, sorted ascending. Other
// characters, including 0, are ignored.
func Digits(s string) []int {
	found := digitRe.FindAllString(s, -1)
	out := make([]int, 0, len(found))
	for _, d := range found {
		n, _ := strconv.Atoi(d)
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
