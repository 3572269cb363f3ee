package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dleamy/daila/internal/config"
	"github.com/dleamy/daila/internal/shell"
	"github.com/dleamy/daila/internal/storage"
	"github.com/dleamy/daila/internal/storage/jsonfile"
	"github.com/dleamy/daila/internal/storage/sqlite"
	"github.com/dleamy/daila/internal/ui"
)

var (
	cfgFile        string
	storageBackend string
	appConfig      *config.Config
	store          storage.Store
)

var rootCmd = &cobra.Command{
	Use:   "daila",
	Short: "Track daily activities from the terminal",
	Long: `daila tracks which activities you completed each day.

Run without arguments to open the interactive tracker: pick an activity,
toggle it for the current day and browse its year on the heat-map.
Nothing is written until you save and quit.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		store, err = openStore(appConfig)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return statusRun(os.Stdout, statusOptions{})
		}
		err := ui.RunTUI(store, ui.TUIConfig{
			Theme:   ui.ResolveTheme(appConfig.Theme),
			HeatMap: appConfig.HeatMap,
		})
		invalidatePromptCache()
		return err
	},
}

// openStore initializes the configured storage backend.
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage {
	case storage.BackendJSON:
		s, err := jsonfile.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing json storage: %w", err)
		}
		return s, nil
	case storage.BackendSQLite:
		s, err := sqlite.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing sqlite storage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}
}

// invalidatePromptCache drops the prompt cache after anything that may have
// written activity data. Failure only costs a stale prompt.
func invalidatePromptCache() {
	if appConfig == nil {
		return
	}
	if err := shell.InvalidateCache(appConfig.DataDir); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not clear prompt cache:", err)
	}
}

// Execute runs the root command. The store is closed here rather than in a
// post-run hook, which cobra skips when the command fails.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeStore(); err == nil {
		err = cerr
	}
	return err
}

func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	if err != nil {
		return fmt.Errorf("closing storage: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (json|sqlite)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
