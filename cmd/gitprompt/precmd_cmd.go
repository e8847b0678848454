package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitprompt/internal/config"
	"github.com/raphi011/gitprompt/internal/output"
	"github.com/raphi011/gitprompt/internal/ui/styles"
)

func newPrecmdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "precmd",
		Short:   "Print the prompt line",
		GroupID: GroupPrompt,
		Long: `Print the shortened working directory followed by the repository summary.

Outside a repository only the path is printed. Errors never fail the
command; run with --verbose to see why a summary is missing.

Glyphs after the branch name:
  ＊  modified files        ＋  staged new files
  ？  untracked files       Ｘ  deleted files
  ➜   renamed files          ✔  clean working tree
  ↑   ahead of upstream     ↓  behind upstream`,
		Example: `  # zsh
  precmd() { gitprompt precmd }

  # bash
  PROMPT_COMMAND='gitprompt precmd'`,
		// A prompt hook must never fail on stray input.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			if cfg == nil {
				d := config.Default()
				cfg = &d
			}

			pal := styles.PaletteFor(cfg.Theme, styles.TerminalIsDark)
			line := renderPrecmd(ctx, cfg, pal, workingDir(), homeDir())

			output.FromContext(ctx).Println(line)
			return nil
		},
	}

	return cmd
}

// workingDir returns the current directory, falling back to $PWD.
func workingDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return os.Getenv("PWD")
}

// homeDir returns the home directory, or "" when it cannot be determined.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
