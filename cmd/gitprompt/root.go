package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitprompt/internal/config"
	"github.com/raphi011/gitprompt/internal/log"
	"github.com/raphi011/gitprompt/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupPrompt = "prompt"
	GroupConfig = "config"
)

// newRootCmd builds the command tree. Logger, config and printer are
// attached to the context once flags are parsed.
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "gitprompt",
		Short: "Path and git status for your shell prompt",
		Long: `gitprompt prints the current directory and a compact summary of the
enclosing git repository: branch, working tree state and whether the branch
is ahead of or behind its upstream.

Hook it into your shell's pre-prompt function:

  precmd() { gitprompt precmd }`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			isPrecmd := cmd.Name() == "precmd"

			// Checked here rather than with MarkFlagsMutuallyExclusive so
			// precmd can let quiet win instead of failing the prompt.
			if verbose && quiet && !isPrecmd {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			l := log.New(cmd.ErrOrStderr(), verbose, quiet)
			ctx = log.WithLogger(ctx, l)

			cfg, err := config.Load()
			if err != nil {
				// precmd must keep stderr clean, so its warning is debug only
				if isPrecmd {
					l.Debug("using default config", "error", err)
				} else {
					l.Printf("Warning: %v\n", err)
				}
			}
			ctx = config.WithConfig(ctx, &cfg)

			stdout := cmd.OutOrStdout()
			out := output.New(stdout, output.ProfileFor(cfg.Color, stdout, os.Environ()))
			ctx = output.WithPrinter(ctx, out)

			cmd.SetContext(ctx)
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log repository lookups and git commands to stderr")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupPrompt, Title: "Prompt Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	cmd.AddCommand(newPrecmdCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'gitprompt -h' for help")
		cancel()
		os.Exit(1)
	}
}
