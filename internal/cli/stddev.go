package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/opencalc/calc"
)

func newStddevCommand() *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "stddev",
		Short: "Sample standard deviation of numbers from stdin",
		Long: `Read whitespace-separated numbers from stdin until EOF or an "end"
token and print their sample standard deviation. Tokens that do not parse
as numbers are skipped with a warning. Fewer than two samples yield 0.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig(cmd.Context())

			n, mean, sd, err := sampleStddev(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if stats {
				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Count", "Mean", "StdDev"})
				t.AppendRow(table.Row{n, fmt.Sprintf(cfg.Format, mean), fmt.Sprintf(cfg.Format, sd)})
				t.Render()
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), cfg.Format+"\n", sd)
			return nil
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "print count and mean alongside the deviation")
	return cmd
}

// sampleStddev accumulates sum and sum of squares online, so the sample set
// never needs to fit in memory. Variance uses the n-1 denominator.
func sampleStddev(in io.Reader, warn io.Writer) (n int, mean, sd float64, err error) {
	var sum, sumSquares float64

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tok := sc.Text()
		if tok == "e" || tok == "end" {
			break
		}
		x, perr := strconv.ParseFloat(tok, 64)
		if perr != nil {
			fmt.Fprintf(warn, "Invalid input: %s\n", tok)
			continue
		}
		sum = calc.Add(sum, x)
		sumSquares = calc.Add(sumSquares, calc.Mul(x, x))
		n++
	}
	if err := sc.Err(); err != nil {
		return 0, 0, 0, err
	}

	if n < 2 {
		return n, sum, 0, nil
	}

	fn := float64(n)
	mean, err = calc.Div(sum, fn)
	if err != nil {
		return n, 0, 0, err
	}
	variance, err := calc.Div(calc.Sub(sumSquares, calc.Mul(fn, calc.Mul(mean, mean))), fn-1)
	if err != nil {
		return n, mean, 0, err
	}
	// Rounding can push the variance of near-constant samples slightly
	// below zero, outside Root's domain.
	if variance < 0 {
		variance = 0
	}
	sd, err = calc.Root(variance, 2)
	if err != nil {
		return n, mean, 0, err
	}
	return n, mean, sd, nil
}
