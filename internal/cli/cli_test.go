package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/make10/internal/board"
	"github.com/robalobadob/make10/internal/game"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut []string
		wantErr bool
	}{
		{
			name:    "check infix win",
			args:    []string{"check", "(9+1)*(2-1)"},
			wantOut: []string{"postfix: 91+21-*", "infix:   (9 + 1) * (2 - 1)", "value:   10", "result:  10"},
		},
		{
			name:    "check postfix",
			args:    []string{"check", "--postfix", "1234+++"},
			wantOut: []string{"infix:   1 + 2 + 3 + 4", "result:  10"},
		},
		{
			name:    "check fraction",
			args:    []string{"check", "1/2+3+4"},
			wantOut: []string{"value:   7.5", "result:  Not an integer"},
		},
		{
			name:    "check garbage",
			args:    []string{"check", "abc"},
			wantOut: []string{"error:", "result:  Invalid input"},
		},
		{
			name:    "postfix",
			args:    []string{"postfix", "12+3*4"},
			wantOut: []string{"12 3 4 * +"},
		},
		{
			name:    "postfix unbalanced",
			args:    []string{"postfix", "(1+2"},
			wantErr: true,
		},
		{
			name:    "infix",
			args:    []string{"infix", "34+5*"},
			wantOut: []string{"(3 + 4) * 5"},
		},
		{
			name:    "infix malformed",
			args:    []string{"infix", "12"},
			wantErr: true,
		},
		{
			name:    "solve",
			args:    []string{"solve", "1", "2", "3", "4"},
			wantOut: []string{"1234+++  =  1 + 2 + 3 + 4"},
		},
		{
			name:    "solve none",
			args:    []string{"solve", "1", "1", "1", "1"},
			wantOut: []string{"no solution"},
		},
		{
			name:    "solve bad digit",
			args:    []string{"solve", "0", "1", "2", "3"},
			wantErr: true,
		},
		{
			name:    "solve too few",
			args:    []string{"solve", "1", "2", "3"},
			wantErr: true,
		},
		{
			name:    "board bad date",
			args:    []string{"board", "--date", "yesterday"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestSolveAll(t *testing.T) {
	out, err := run(t, "", "solve", "--all", "1", "2", "3", "4")
	require.NoError(t, err)
	assert.Greater(t, strings.Count(out, "\n"), 1)
}

func TestBoardReproducible(t *testing.T) {
	a, err := run(t, "", "board", "--seed", "7")
	require.NoError(t, err)
	b, err := run(t, "", "board", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	lines := strings.Split(a, "\n")
	require.GreaterOrEqual(t, len(lines), board.Side)
	for _, l := range lines[:board.Side] {
		assert.Len(t, strings.Fields(l), board.Side)
	}

	c, err := run(t, "", "board", "--date", "2024-03-01", "--salt", "s")
	require.NoError(t, err)
	d, err := run(t, "", "board", "--date", "2024-03-01", "--salt", "s")
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestPlay(t *testing.T) {
	g := game.New(board.NewSequence(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 1, 2, 3,
		4, 5, 6, 7,
		9, 9, 9, 9,
	))
	cmd := &cobra.Command{}
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("hint\n1+2+3+4\n1+1+1+1\n\nquit\n9+9\n"))

	require.NoError(t, play(cmd, g))
	s := out.String()
	assert.Contains(t, s, "try row-1: 1 + 2 + 3 + 4")
	assert.Contains(t, s, "10! cleared row-1")
	assert.Contains(t, s, "Not 10")
	assert.Contains(t, s, "9 9 9 9\n5 6 7 8")
	assert.Contains(t, s, "final score 1 after 2 formulas")
}

func TestPlayEndOfInput(t *testing.T) {
	out, err := run(t, "", "play", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "final score 0 after 0 formulas")
}
