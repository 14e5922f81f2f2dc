// internal/formula/convert.go
//
// Infix → postfix conversion (shunting-yard).
//
// Rules:
//   - Whitespace is stripped first; the remainder may only contain digits,
//     + - * / and parentheses.
//   - Consecutive digits form one operand ("12"), unlike postfix submissions.
//   - Operators pop stacked operators of equal or higher precedence before
//     being pushed (left associative; + - bind weaker than * /).
//   - ')' without a matching '(' and a '(' left at the end are ErrParens.

package formula

import "strings"

// ToPostfix converts an infix expression into a postfix token sequence.
// Errors are *ParseError wrapping ErrToken or ErrParens.
//
// The converter does not check operator/operand placement ("1++2" converts);
// EvaluatePostfix and ValidateShape reject such sequences downstream.
func ToPostfix(infix string) (Postfix, error) {
	expr := strings.Join(strings.Fields(infix), "")
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if !isDigit(c) && !isOperator(c) && c != '(' && c != ')' {
			return nil, &ParseError{Pos: i, Char: string(c), Err: ErrToken}
		}
	}

	var out Postfix
	var ops []byte // operator stack; holds '(' markers too
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case isDigit(c):
			j := i
			for j+1 < len(expr) && isDigit(expr[j+1]) {
				j++
			}
			out = append(out, Token{Kind: Operand, Text: expr[i : j+1]})
			i = j
		case c == '(':
			ops = append(ops, c)
		case c == ')':
			for len(ops) > 0 && ops[len(ops)-1] != '(' {
				out = append(out, opToken(ops[len(ops)-1]))
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, &ParseError{Pos: i, Char: ")", Err: ErrParens}
			}
			ops = ops[:len(ops)-1]
		default:
			for len(ops) > 0 && isOperator(ops[len(ops)-1]) &&
				precedence(ops[len(ops)-1]) >= precedence(c) {
				out = append(out, opToken(ops[len(ops)-1]))
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, c)
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top == '(' {
			return nil, &ParseError{Pos: len(expr), Char: "(", Err: ErrParens}
		}
		out = append(out, opToken(top))
		ops = ops[:len(ops)-1]
	}
	return out, nil
}

func opToken(c byte) Token { return Token{Kind: Operator, Text: string(c)} }

// BalancedParens reports whether every ')' closes an earlier '(' and none
// are left open.
func BalancedParens(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
