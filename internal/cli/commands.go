package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/make10/internal/board"
	"github.com/robalobadob/make10/internal/daily"
	"github.com/robalobadob/make10/internal/formula"
	"github.com/robalobadob/make10/internal/game"
)

func newCheckCommand() *cobra.Command {
	var postfix bool
	cmd := &cobra.Command{
		Use:   "check <formula>",
		Short: "Judge a formula",
		Long: `Judge a formula built from four digits 1-9 and three operators.
Prints one of: 10, Not 10, Not an integer, Invalid input.

Formulas are infix ("(9+1)*(2-1)") unless --postfix is given ("91+21-*").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rep formula.Report
			if postfix {
				rep = formula.AnalyzePostfix(args[0])
			} else {
				rep = formula.Analyze(args[0])
			}
			out := cmd.OutOrStdout()
			if rep.Postfix != "" {
				_, _ = fmt.Fprintf(out, "postfix: %s\n", rep.Postfix)
				_, _ = fmt.Fprintf(out, "infix:   %s\n", formula.ToInfix(rep.Postfix))
			}
			if rep.Err != nil {
				log.Debug().Err(rep.Err).Str("input", rep.Input).Msg("rejected")
				_, _ = fmt.Fprintf(out, "error:   %v\n", rep.Err)
			} else {
				_, _ = fmt.Fprintf(out, "value:   %s\n", strconv.FormatFloat(rep.Value, 'g', -1, 64))
			}
			_, _ = fmt.Fprintf(out, "result:  %s\n", rep.Outcome)
			return nil
		},
	}
	cmd.Flags().BoolVar(&postfix, "postfix", false, "Read the formula as postfix")
	return cmd
}

func newPostfixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "postfix <infix>",
		Short: "Convert an infix expression to postfix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := formula.ToPostfix(args[0])
			if err != nil {
				return err
			}
			// operands are space-separated so multi-digit numbers stay readable
			texts := make([]string, len(p))
			for i, t := range p {
				texts[i] = t.Text
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(texts, " "))
			return nil
		},
	}
}

func newInfixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "infix <postfix>",
		Short: "Print a single-digit postfix formula as infix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := formula.ToInfix(args[0])
			if s == "" {
				return fmt.Errorf("malformed postfix %q", args[0])
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newSolveCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "solve <d1> <d2> <d3> <d4>",
		Short: "Find formulas over four digits that make 10",
		Args:  cobra.ExactArgs(formula.Operands),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := parseDigits(args)
			if err != nil {
				return err
			}
			sols := formula.Solutions(digits)
			out := cmd.OutOrStdout()
			if len(sols) == 0 {
				_, _ = fmt.Fprintln(out, "no solution")
				return nil
			}
			if !all {
				sols = sols[:1]
			}
			for _, s := range sols {
				_, _ = fmt.Fprintf(out, "%s  =  %s\n", s, formula.ToInfix(s))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Print every solution")
	return cmd
}

func parseDigits(args []string) ([formula.Operands]int, error) {
	var d [formula.Operands]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < board.MinDigit || n > board.MaxDigit {
			return d, fmt.Errorf("digit %q: must be 1-9", a)
		}
		d[i] = n
	}
	return d, nil
}

// boardFlags picks the digit source shared by board and play.
type boardFlags struct {
	seed int64
	date string
	salt string
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for a reproducible board (0 draws randomly)")
	cmd.Flags().StringVar(&f.date, "date", "", "Use the daily board for YYYY-MM-DD")
	cmd.Flags().StringVar(&f.salt, "salt", "", "Daily salt (default $DAILY_SALT or local_dev_salt)")
}

func (f *boardFlags) source() (board.DigitSource, error) {
	switch {
	case f.date != "":
		day, err := time.Parse("2006-01-02", f.date)
		if err != nil {
			return nil, fmt.Errorf("bad --date: %w", err)
		}
		salt := f.salt
		if salt == "" {
			salt = os.Getenv("DAILY_SALT")
		}
		if salt == "" {
			salt = "local_dev_salt"
		}
		return daily.Source(day, salt), nil
	case f.seed != 0:
		return board.NewSeededSource(uint64(f.seed), 0), nil
	default:
		return board.CryptoSource{}, nil
	}
}

func newBoardCommand() *cobra.Command {
	var flags boardFlags
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Draw a board and list its clearable areas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := flags.source()
			if err != nil {
				return err
			}
			b := board.New(src)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, b.String())
			_, _ = fmt.Fprintln(out)
			for _, a := range board.Areas {
				v := b.Values(a)
				if s, ok := formula.Solve(v); ok {
					_, _ = fmt.Fprintf(out, "%-18s %v  %s\n", a.Name, v, formula.ToInfix(s))
				}
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newPlayCommand() *cobra.Command {
	var flags boardFlags
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Play make10 in the terminal. Type an infix formula over the four digits of
any row, column, diagonal or corner block that makes 10 to clear it.
"hint" suggests a move, "quit" (or end of input) stops.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := flags.source()
			if err != nil {
				return err
			}
			return play(cmd, game.New(src))
		},
	}
	flags.register(cmd)
	return cmd
}

var errQuit = errors.New("quit")

func play(cmd *cobra.Command, g *game.Game) error {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	show := func() {
		st := g.Snapshot()
		_, _ = fmt.Fprintf(out, "\n%s\nscore %d> ", st.Board.String(), st.Score)
	}
	step := func(line string) error {
		switch line {
		case "":
			return nil
		case "quit", "exit":
			return errQuit
		case "hint":
			if h, ok := g.Hint(); ok {
				_, _ = fmt.Fprintf(out, "try %s: %s\n", h.Area, h.Formula)
			} else {
				_, _ = fmt.Fprintln(out, "no area can make 10")
			}
			return nil
		}
		sub, err := g.Submit(line)
		if err != nil {
			return err
		}
		if sub.Area != "" {
			_, _ = fmt.Fprintf(out, "%s! cleared %s\n", sub.Outcome, sub.Area)
		} else {
			_, _ = fmt.Fprintln(out, sub.Outcome)
		}
		return nil
	}

	show()
	for in.Scan() {
		err := step(strings.TrimSpace(in.Text()))
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			return err
		}
		show()
	}
	st := g.Snapshot()
	_, _ = fmt.Fprintf(out, "\nfinal score %d after %d formulas\n", st.Score, st.Submissions)
	return in.Err()
}
