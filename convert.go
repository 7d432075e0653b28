package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/markovic-nikola/keyhint/db"
	"github.com/markovic-nikola/keyhint/keymap"
	"github.com/markovic-nikola/keyhint/shortcut"
	"github.com/markovic-nikola/keyhint/source"
)

var importCmd = &cobra.Command{
	Use:   "import <keymap.yaml> <out.db>",
	Short: "Store a YAML keymap in a SQLite shortcut database",
	Long: `Read a YAML keymap and write its modes to a SQLite database, creating the
file if needed. Modes already stored in the database are replaced.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		modes, err := keymap.Load(args[0])
		if err != nil {
			return fmt.Errorf("load %s: %w", args[0], err)
		}
		return importModes(cmd.OutOrStdout(), args[1], modes)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <source> [out.yaml]",
	Short: "Write a keymap or database as YAML",
	Long:  `Write any shortcut source as a YAML keymap, to the given file or to stdout.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		modes, err := source.Load(args[0])
		if err != nil {
			return err
		}
		data, err := keymap.Marshal(modes)
		if err != nil {
			return fmt.Errorf("encode keymap: %w", err)
		}

		if len(args) < 2 {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(args[1], data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[1], err)
		}
		slog.Debug("keymap exported", "from", args[0], "to", args[1], "modes", len(modes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd, exportCmd)
}

// importModes replaces the modes stored at path and prints what the database
// holds afterwards.
func importModes(w io.Writer, path string, modes []shortcut.Mode) error {
	database, err := db.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer database.Close()

	if err := db.InitSchema(database); err != nil {
		return err
	}
	if err := db.SaveModes(database, modes); err != nil {
		return fmt.Errorf("save modes: %w", err)
	}
	slog.Debug("keymap imported", "to", path, "modes", len(modes))

	titles, err := db.ListModes(database)
	if err != nil {
		return fmt.Errorf("list modes: %w", err)
	}
	fmt.Fprintf(w, "Imported %d modes into %s\n", len(titles), path)
	for _, title := range titles {
		n, err := db.CountShortcuts(database, title)
		if err != nil {
			return fmt.Errorf("count shortcuts in %q: %w", title, err)
		}
		fmt.Fprintf(w, "  %s: %d shortcuts\n", title, n)
	}
	return nil
}
