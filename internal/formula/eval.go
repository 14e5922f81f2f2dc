package formula

import "strconv"

// EvaluatePostfix runs the token sequence on a stack machine.
//
// Operands are pushed; each operator pops second (top) then first and pushes
// first OP second. Division is real division with no zero check, so x/0
// yields ±Inf or NaN and is left for Classify to reject. The sequence must
// leave exactly one value on the stack.
//
// Tokens need not have passed ValidateShape: the infix path feeds the
// converter's output straight in, so structural faults are reported here as
// *EvalError.
func EvaluatePostfix(tokens []Token) (float64, error) {
	stack := make([]float64, 0, len(tokens))
	for i, t := range tokens {
		if t.Kind == Operand {
			if !allDigits(t.Text) {
				return 0, &EvalError{Pos: i, Err: ErrOperand}
			}
			v, err := strconv.ParseFloat(t.Text, 64)
			if err != nil {
				return 0, &EvalError{Pos: i, Err: ErrOperand}
			}
			stack = append(stack, v)
			continue
		}
		if len(stack) < 2 {
			return 0, &EvalError{Pos: i, Err: ErrUnderflow}
		}
		second := stack[len(stack)-1]
		first := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var r float64
		switch t.Text {
		case "+":
			r = first + second
		case "-":
			r = first - second
		case "*":
			r = first * second
		case "/":
			r = first / second
		default:
			return 0, &EvalError{Pos: i, Err: ErrOperator}
		}
		stack = append(stack, r)
	}
	if len(stack) != 1 {
		return 0, &EvalError{Pos: len(tokens), Err: ErrLeftover}
	}
	return stack[0], nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
