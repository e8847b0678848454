package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gitprompt/internal/config"
	"github.com/raphi011/gitprompt/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage gitprompt configuration.

Config file: ~/.config/gitprompt/config.toml (override with GITPROMPT_CONFIG)`,
		Example: `  gitprompt config init     # Create default config
  gitprompt config show     # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  gitprompt config init      # Create config
  gitprompt config init -f   # Overwrite existing config
  gitprompt config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.DefaultContent())
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration as TOML.

The output includes defaults and GITPROMPT_BACKEND / GITPROMPT_COLOR overrides.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			cfg := config.FromContext(ctx)
			if cfg == nil {
				d := config.Default()
				cfg = &d
			}

			text, err := cfg.Encode()
			if err != nil {
				return err
			}

			if path, err := config.Path(); err == nil {
				out.Printf("# %s\n", path)
			}
			out.Print(text)
			return nil
		},
	}

	return cmd
}
