package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/markovic-nikola/keyhint/config"
	"github.com/markovic-nikola/keyhint/keysym"
	"github.com/markovic-nikola/keyhint/source"
	"github.com/markovic-nikola/keyhint/ui"
	"github.com/markovic-nikola/keyhint/update"
)

// Set via -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "keyhint [source]",
	Short: "Browse and search keyboard shortcuts in the terminal",
	Long: `keyhint shows the keyboard shortcuts of a YAML keymap or a SQLite
shortcut database. Press ? for the searchable shortcut popup.

Without a source, keyhint offers the keymaps found in the current directory.`,
	Version:      version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}
		if err := setupLogging(cfg); err != nil {
			return err
		}
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
	RunE: runTUI,
}

func init() {
	// Viper precedence: flags > env > defaults
	rootCmd.PersistentFlags().String("platform", config.DefaultPlatform, "Key symbol set: auto, macos or other (env: KEYHINT_PLATFORM)")
	rootCmd.PersistentFlags().String("log-file", "", "Write debug logs to this file (env: KEYHINT_LOG_FILE)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error (env: KEYHINT_LOG_LEVEL)")
	rootCmd.Flags().Bool("no-update-check", false, "Don't check for a newer release on exit (env: KEYHINT_NO_UPDATE_CHECK)")
}

// formatter builds the key formatter for the configured platform.
func formatter(cmd *cobra.Command) keysym.Formatter {
	cfg, _ := config.FromContext(cmd.Context())
	return keysym.NewFormatter(cfg.ResolvePlatform())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, _ := config.FromContext(cmd.Context())

	var path string
	if len(args) > 0 {
		path = args[0]
		if err := source.Validate(path); err != nil {
			return err
		}
	}

	// Development builds have no release to compare against.
	var notify func(io.Writer)
	if !cfg.NoUpdateCheck && version != "dev" {
		notify = update.CheckInBackground(cmd.Context(), version)
	}

	model := ui.NewModel(ui.Options{
		Source:    path,
		Formatter: formatter(cmd),
	})
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if notify != nil {
		notify(cmd.OutOrStdout())
	}
	return nil
}
