package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/phsym/console-slog"
	"github.com/spf13/cobra"
)

// Init installs the console logger as the slog default and returns its level.
func Init() *slog.LevelVar {
	level := &slog.LevelVar{}
	logger := slog.New(
		console.NewHandler(os.Stderr, &console.HandlerOptions{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	slog.SetDefault(logger)
	cobra.EnableCommandSorting = false
	return level
}

type CLI struct {
	command *cobra.Command
}

// NewCLI create new CLI instance with every subcommand attached.
func NewCLI() *CLI {
	level := Init()

	command := cobra.Command{
		Use:   "warp",
		Short: "Align and compare time series with Dynamic Time Warping",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				return err
			}
			if debug {
				level.Set(slog.LevelDebug)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	command.PersistentFlags().Bool("debug", false, "Enable debug mode")

	command.AddCommand(
		newAlignCommand(),
		newPairwiseCommand(),
		newClusterCommand(),
		newPlotCommand(),
		newGenerateCommand(),
	)
	return &CLI{&command}
}

// Execute runs the command line and reports whether it succeeded.
// An interrupt cancels the running command.
func (cli *CLI) Execute() bool {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cli.command.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return false
	}
	return true
}
