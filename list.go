package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/markovic-nikola/keyhint/keysym"
	"github.com/markovic-nikola/keyhint/shortcut"
	"github.com/markovic-nikola/keyhint/source"
	"github.com/markovic-nikola/keyhint/ui"
)

var listQuery string

var listCmd = &cobra.Command{
	Use:   "list [source]",
	Short: "Print the shortcuts of a keymap or database",
	Long: `Print every titled shortcut, grouped by mode, with keys formatted for the
platform. Without a source, the first keymap in the current directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := sourceArg(args)
		if err != nil {
			return err
		}
		modes, err := source.Load(path)
		if err != nil {
			return err
		}
		return printModes(cmd.OutOrStdout(), modes, listQuery, formatter(cmd))
	},
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Only print shortcuts matching this text")
	rootCmd.AddCommand(listCmd)
}

func sourceArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if files := source.Find("."); len(files) > 0 {
		return files[0], nil
	}
	return "", errors.New("no keymap or shortcut database in the current directory")
}

// printModes writes the same list the hint popup shows. Untitled shortcuts
// are never listed, only counted.
func printModes(w io.Writer, modes []shortcut.Mode, query string, f keysym.Formatter) error {
	normalized := shortcut.NormalizeModes(modes)
	ctx := ui.HintContext{Modes: normalized, SearchText: query}

	if _, err := fmt.Fprintln(w, ui.RenderShortcuts(ctx, f)); err != nil {
		return err
	}

	hidden := 0
	for _, m := range normalized {
		hidden += len(m.Shortcuts) - len(shortcut.Search(m.Shortcuts, "", f))
	}
	if hidden > 0 {
		_, err := fmt.Fprintf(w, "\n(hidden: %d untitled)\n", hidden)
		return err
	}
	return nil
}
