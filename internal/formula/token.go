// internal/formula/token.go
//
// Token model shared by the validator, evaluator, converter and printer.
//
// Notes:
//   - Postfix submissions are single-character tokens (digits 1–9, + - * /).
//   - The infix converter may emit multi-digit operands ("12"), so operands
//     carry their full text rather than a single byte.

package formula

import "strings"

// Kind distinguishes operands from operators.
type Kind int

const (
	Operand Kind = iota
	Operator
)

// String returns the marker used in token shapes ("x" / "o").
func (k Kind) String() string {
	if k == Operator {
		return "o"
	}
	return "x"
}

// Token is one element of a postfix sequence.
type Token struct {
	Kind Kind
	Text string
}

// Postfix is a token sequence in evaluation order.
type Postfix []Token

// String concatenates the token texts without separators.
func (p Postfix) String() string {
	var b strings.Builder
	for _, t := range p {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Shape returns the marker string of p (e.g. "xxoxxoo").
func (p Postfix) Shape() string {
	var b strings.Builder
	for _, t := range p {
		b.WriteString(t.Kind.String())
	}
	return b.String()
}

// Tokenize splits a single-character postfix string into tokens.
// Anything that is not an operator is treated as an operand; the evaluator
// rejects operands it cannot parse.
func Tokenize(postfix string) Postfix {
	out := make(Postfix, 0, len(postfix))
	for i := 0; i < len(postfix); i++ {
		c := postfix[i]
		if isOperator(c) {
			out = append(out, Token{Kind: Operator, Text: string(c)})
		} else {
			out = append(out, Token{Kind: Operand, Text: string(c)})
		}
	}
	return out
}

// precedence of the binary operators; 0 for anything else.
func precedence(c byte) int {
	switch c {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	}
	return 0
}

func isOperator(c byte) bool { return precedence(c) > 0 }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
