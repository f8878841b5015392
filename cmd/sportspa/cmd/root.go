package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	spalog "github.com/msto63/sportspa/foundation/core/log"
	"github.com/msto63/sportspa/internal/logic"
	"github.com/msto63/sportspa/pkg/core/config"
	"github.com/msto63/sportspa/pkg/core/logging"
	"github.com/msto63/sportspa/pkg/core/version"
)

// errReported marks a failure whose message was already printed
var errReported = errors.New("command failed")

// options holds the persistent flags and the state built from them
type options struct {
	cfgFile string
	verbose bool

	cfg      *config.Config
	logger   *spalog.Logger
	closeLog func() error
	manager  *logic.Manager
}

// NewRootCommand builds the sportspa command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "sportspa",
		Short: "SportsPA - member and facility manager",
		Long: `SportsPA keeps track of the members and facilities of a sports club.

Without a subcommand an interactive shell is started. Type help in the
shell to see every command.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $SPORTSPA_CONFIG or ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(newREPLCommand(opts))
	rootCmd.AddCommand(newExecCommand(opts))
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// Execute runs the command tree with the process arguments
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError("sportspa", err)
	}
	return err
}

func (o *options) setup(cmd *cobra.Command, args []string) error {
	// version needs neither config nor logger
	if cmd.Name() == "version" {
		return nil
	}

	// an optional .env file feeds the SPORTSPA_* overrides
	_ = godotenv.Load()

	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.Load(o.cfgFile)
	} else {
		o.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logCfg := logging.FromConfig(o.cfg.General.Name, o.cfg.Logging)
	if o.verbose {
		logCfg.Level = "debug"
	}
	o.logger, o.closeLog, err = logging.NewLogger(logCfg)
	if err != nil {
		return err
	}

	o.logger.Debug("configuration loaded", spalog.Fields{
		"version":     version.Info(),
		"environment": o.cfg.General.Environment,
		"config":      o.cfgFile,
	})

	o.manager = logic.NewManager(logic.Config{
		Logger:      o.logger,
		SlowCommand: o.cfg.CLI.SlowCommand.Duration,
	})
	return nil
}

func (o *options) teardown() error {
	if o.closeLog == nil {
		return nil
	}
	err := o.closeLog()
	o.closeLog = nil
	return err
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
