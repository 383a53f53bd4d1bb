/*
Copyright © 2024 Ryan Painter <paintersrp@gmail.com>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/weblib/internal/fzf"
	"github.com/Paintersrp/weblib/internal/tui/vault"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:     "open [query]",
	Aliases: []string{"o"},
	Short:   "Fuzzy-find a note and open it in the browser.",
	Long: heredoc.Doc(`
		Pick a markdown file from the vault with a fuzzy finder and a
		rendered preview, then launch the browser with that file already
		open in a tab. An optional argument seeds the search query.
	`),
	Example: "weblib open cli-notes or weblib open",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if appCfg.VaultDir == "" {
			return fmt.Errorf(
				"no vault directory configured, run %q first",
				"weblib init",
			)
		}

		finder := fzf.NewFuzzyFinder(
			appCfg.VaultDir,
			appCfg.Theme,
			"Select a note to open",
		)

		var (
			path string
			err  error
		)
		if len(args) == 0 {
			path, err = finder.Run()
		} else {
			path, err = finder.RunWithQuery(args[0])
		}
		if err != nil {
			if errors.Is(err, fzf.ErrNoSelection) {
				return nil
			}
			return err
		}

		return vault.RunWithFile(appCfg, path)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
