package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const welcomeMessage = "Welcome to SportsPA!"

func newREPLCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Starts the interactive shell (default)",
		Long: `Reads one command per line from standard input and prints its
result. The shell stops on exit or at the end of input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts)
		},
	}
}

func runREPL(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	st := newStyles(out, opts.cfg.CLI.Color)

	fmt.Fprintln(out, st.banner.Render(welcomeMessage))
	fmt.Fprintln(out, st.hint.Render("Type help to see all commands."))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, st.prompt.Render(opts.cfg.CLI.Prompt))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		if line == "" {
			continue
		}
		if stop := executeLine(out, st, opts, line); stop {
			return nil
		}
	}
}

// executeLine runs one command and prints its feedback. It reports whether
// the shell should stop.
func executeLine(out io.Writer, st styles, opts *options, line string) bool {
	result, err := opts.manager.Execute(line)
	if err != nil {
		fmt.Fprintln(out, paint(st.failure, err.Error()))
		return false
	}
	fmt.Fprintln(out, paint(st.success, result.Feedback))
	return result.Exit
}
