package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/opencalc/calc"
)

var (
	resultStyle = lipgloss.NewStyle().Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func newREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive calculator",
		Long:  `Read expressions interactively, with history and line editing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig(cmd.Context())
			verb := cfg.Format

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          cfg.Prompt,
				HistoryFile:     cfg.HistoryFile,
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return fmt.Errorf("failed to initialize repl: %w", err)
			}
			defer func() { _ = rl.Close() }()

			fmt.Fprintf(cmd.OutOrStdout(), "calc %s\n", Version)
			fmt.Fprintln(cmd.OutOrStdout(), "Type an expression, or quit to exit")

			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					continue
				}
				if errors.Is(err, io.EOF) {
					break
				}

				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "quit" || line == "exit" {
					break
				}

				r, err := calc.Evaluate(line)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), errStyle.Render(err.Error()))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), resultStyle.Render(fmt.Sprintf(verb, r)))
			}
			return nil
		},
	}
}
