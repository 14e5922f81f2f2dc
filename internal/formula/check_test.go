package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFormula(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		want    Outcome
	}{
		{"sum to 10", "1234+++", OutcomeTen},
		{"product of sums", "55+11**", OutcomeTen},
		{"fractional path to 10", "8115/-/", OutcomeTen},
		{"one hundred", "91+28+*", OutcomeNotTen},
		{"negative", "91+28-*", OutcomeNotTen},
		{"eleven", "12-34*+", OutcomeNotTen},
		{"fraction", "12+4/5+", OutcomeNotInteger},
		{"two fifths", "91+55*/", OutcomeNotInteger},
		{"divide by zero", "211-/3+", OutcomeNotInteger},
		{"zero over zero", "11-11-/", OutcomeNotInteger},
		{"six characters", "12+34+", OutcomeInvalid},
		{"eight characters", "5-9-1-6+", OutcomeInvalid},
		{"short length", "34+5/", OutcomeInvalid},
		{"zero digit", "10+2+3+", OutcomeInvalid},
		{"bad shape", "+++1234", OutcomeInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckFormula(tt.formula))
		})
	}
}

func TestAnalyzePostfixReport(t *testing.T) {
	rep := AnalyzePostfix("91+28+*")
	require.NoError(t, rep.Err)
	assert.Equal(t, "91+28+*", rep.Postfix)
	assert.Equal(t, 100.0, rep.Value)
	assert.Equal(t, OutcomeNotTen, rep.Outcome)

	rep = AnalyzePostfix("12+34+")
	assert.ErrorIs(t, rep.Err, ErrLength)
	assert.Empty(t, rep.Postfix)
	assert.Equal(t, OutcomeInvalid, rep.Outcome)
}

func TestCheckInfix(t *testing.T) {
	tests := []struct {
		name  string
		infix string
		want  Outcome
	}{
		{"sum", "1+2+3+4", OutcomeTen},
		{"nested division", "8 / (1 - 1/5)", OutcomeTen},
		{"products", "(5+5)*(1*1)", OutcomeTen},
		{"hundred", "(9+1)*(2+8)", OutcomeNotTen},
		{"fraction", "(9+1)/(5*5)", OutcomeNotInteger},
		{"divide by zero", "2/(1-1)+3", OutcomeNotInteger},
		{"three digits", "1+2+3", OutcomeInvalid},
		{"five digits", "1+2+3+4+5", OutcomeInvalid},
		{"zero digit", "0+1+2+7", OutcomeInvalid},
		{"unbalanced", "(1+2+3+4", OutcomeInvalid},
		{"letter", "1+2+3+x", OutcomeInvalid},
		{"empty", "", OutcomeInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.infix))
		})
	}
}

func TestAnalyzeRejectsMultiDigitOperands(t *testing.T) {
	// 12 3 + + 4 - re-reads as seven single characters; it must not slip through.
	rep := Analyze("12+3+-4")
	assert.Equal(t, OutcomeInvalid, rep.Outcome)
	assert.ErrorIs(t, rep.Err, ErrMultiDigit)

	rep = Analyze("(1+2")
	assert.ErrorIs(t, rep.Err, ErrParens)
	assert.Equal(t, "(1+2", rep.Input)
}

func TestAnalyzeReport(t *testing.T) {
	rep := Analyze("(9 + 1) * (2 + 8)")
	require.NoError(t, rep.Err)
	assert.Equal(t, "(9 + 1) * (2 + 8)", rep.Input)
	assert.Equal(t, "91+28+*", rep.Postfix)
	assert.Equal(t, 100.0, rep.Value)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want Outcome
	}{
		{"exact", 10, OutcomeTen},
		{"tiny error above", 10 + 1e-12, OutcomeTen},
		{"tiny error below", 10 - 1e-10, OutcomeTen},
		{"outside tolerance", 10 + 1e-6, OutcomeNotInteger},
		{"half", 10.5, OutcomeNotInteger},
		{"eleven", 11, OutcomeNotTen},
		{"minus ten", -10, OutcomeNotTen},
		{"zero", 0, OutcomeNotTen},
		{"nan", math.NaN(), OutcomeNotInteger},
		{"+inf", math.Inf(1), OutcomeNotInteger},
		{"-inf", math.Inf(-1), OutcomeNotInteger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.v))
		})
	}
}

func TestOutcomeWon(t *testing.T) {
	assert.True(t, OutcomeTen.Won())
	assert.False(t, OutcomeNotTen.Won())
	assert.False(t, OutcomeInvalid.Won())
}

func TestDigits(t *testing.T) {
	assert.Equal(t, []int{1, 2, 8, 9}, Digits("(9+1)*(2+8)"))
	assert.Equal(t, []int{1, 5}, Digits("10+05"))
	assert.Equal(t, []int{}, Digits("+-*/"))
}
