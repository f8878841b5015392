package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExecCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exec COMMAND [COMMAND...]",
		Short: "Executes commands without starting the shell",
		Long: `Executes each argument as one command against a fresh address book
and prints its result. Execution stops at the first failing command.`,
		Example: `  sportspa exec "addf n/Court 1 l/University Sports Hall t/11:30 c/5" "listf"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			st := newStyles(out, opts.cfg.CLI.Color)

			for _, line := range args {
				result, err := opts.manager.Execute(line)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), paint(st.failure, err.Error()))
					return fmt.Errorf("%w: %s", errReported, line)
				}
				fmt.Fprintln(out, paint(st.success, result.Feedback))
				if result.Exit {
					return nil
				}
			}
			return nil
		},
	}
}
