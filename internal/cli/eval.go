package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencalc/calc"
)

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression ...]",
		Short: "Evaluate expressions",
		Long: `Evaluate each argument as an expression and print the result.
With no arguments, expressions are read from stdin, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd.Context())
			log := getLogger(cmd.Context())
			verb := cfg.Format + "\n"

			exprs := args
			if len(exprs) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if line := strings.TrimSpace(sc.Text()); line != "" {
						exprs = append(exprs, line)
					}
				}
				if err := sc.Err(); err != nil {
					return err
				}
			}

			failed := 0
			for _, expr := range exprs {
				r, err := calc.Evaluate(expr)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", expr, err)
					failed++
					continue
				}
				log.Debug("evaluated", "expr", expr, "result", r)
				fmt.Fprintf(cmd.OutOrStdout(), verb, r)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
			}
			return nil
		},
	}
}
