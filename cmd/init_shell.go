package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dleamy/daila/internal/shell"
)

var initShellCmd = &cobra.Command{
	Use:   "init <shell>",
	Short: "Output shell integration script",
	Long: `Output shell integration script for eval.

The script sets up shell completions, a prompt hook that exports the
DAILA_* status variables and a daila_prompt_info helper.

Supported shells: bash, zsh`,
	Example: `  # Add to ~/.bashrc
  eval "$(daila init bash)"

  # Add to ~/.zshrc
  eval "$(daila init zsh)"`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: shell.Supported(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return shell.WriteInit(os.Stdout, args[0])
	},
}

func init() {
	rootCmd.AddCommand(initShellCmd)
}
