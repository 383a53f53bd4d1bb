/*
Copyright © 2024 Ryan Painter <paintersrp@gmail.com>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/erikgeiser/promptkit/textinput"
	"github.com/spf13/cobra"
)

var previewThemes = []string{"dracula", "dark", "light", "notty"}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i", "initialize"},
	Short:   "Set up the weblib configuration.",
	Long: heredoc.Doc(`
		Walks you through choosing a vault directory and a preview theme,
		then saves both to the config file. Run it again at any time to
		point weblib at a different vault.
	`),
	Example: "weblib init",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		input := textinput.New("Vault directory:")
		input.InitialValue = appCfg.VaultDir
		if input.InitialValue == "" {
			input.InitialValue = home
		}
		input.Placeholder = "path to your notes"

		dir, err := input.RunPrompt()
		if err != nil {
			return err
		}

		sel := selection.New("Preview theme:", previewThemes)
		sel.Filter = nil

		theme, err := sel.RunPrompt()
		if err != nil {
			return err
		}

		appCfg.Theme = theme
		if err := appCfg.SetVaultDir(dir); err != nil {
			return err
		}

		fmt.Printf(
			"Saved: vault %s, theme %s (%s)\n",
			dir,
			theme,
			appCfg.GetConfigPath(),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
