package formula

import "strings"

// ToInfix renders a single-character postfix string as infix text with
// spaces around operators, e.g. "34+5*" → "(3 + 4) * 5".
//
// Parenthesization is a textual heuristic, not a minimal-bracket guarantee:
//   - the left side is wrapped when it contains + or - and the operator is * or /
//   - the right side is wrapped when it contains + or - and the operator is - * or /
//   - the right side is also wrapped when it contains * or / and the operator is /
//
// The rules may add redundant parentheses but the printed text always
// re-parses to the same value. Input is not validated; a string that does not
// reduce to one expression yields "".
func ToInfix(postfix string) string {
	var stack []string
	for i := 0; i < len(postfix); i++ {
		c := postfix[i]
		if !isOperator(c) {
			stack = append(stack, string(c))
			continue
		}
		if len(stack) < 2 {
			return ""
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		if (c == '*' || c == '/') && hasAny(left, "+-") {
			left = "(" + left + ")"
		}
		if c != '+' && hasAny(right, "+-") {
			right = "(" + right + ")"
		} else if c == '/' && hasAny(right, "*/") {
			right = "(" + right + ")"
		}
		stack = append(stack, left+" "+string(c)+" "+right)
	}
	if len(stack) != 1 {
		return ""
	}
	return stack[0]
}

func hasAny(s, chars string) bool { return strings.ContainsAny(s, chars) }
