package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dleamy/daila/internal/ui"
)

var purgeYes bool

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove records of deleted activities",
	Long: `Deleting an activity in the tracker keeps its records on disk, hidden.
purge permanently removes those orphan records. Requires confirmation
unless --yes is used.`,
	Example: `  daila purge
  daila purge --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm := func(prompt string) (bool, error) {
			return ui.Confirm(prompt, ui.ResolveTheme(appConfig.Theme))
		}
		if purgeYes {
			confirm = nil
		}
		return purgeRun(os.Stdout, confirm)
	},
}

// purgeRun removes orphan records. A nil confirm skips the prompt.
func purgeRun(w io.Writer, confirm func(string) (bool, error)) error {
	reg, log, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}

	n := len(log.Orphans(reg))
	if n == 0 {
		ui.FormatPurged(w, 0)
		return nil
	}

	if confirm != nil {
		ok, err := confirm(fmt.Sprintf("Remove %d records of deleted activities?", n))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	removed := log.PurgeOrphans(reg)
	if err := store.Save(reg, log); err != nil {
		return fmt.Errorf("saving activities: %w", err)
	}
	invalidatePromptCache()
	ui.FormatPurged(w, removed)
	return nil
}

func init() {
	purgeCmd.Flags().BoolVar(&purgeYes, "yes", false, "skip confirmation prompt")
	rootCmd.AddCommand(purgeCmd)
}
