/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/weblib/internal/config"
	"github.com/Paintersrp/weblib/internal/constants"
	"github.com/Paintersrp/weblib/internal/tui/vault"
)

var (
	cfgFile       string
	vaultOverride string

	appCfg   *config.Config
	cfgError error
)

var rootCmd = &cobra.Command{
	Use:     constants.AppName,
	Version: constants.Version,
	Short:   "Browse and edit a vault of markdown notes.",
	Long: heredoc.Doc(`
		weblib is a tabbed browser and editor for a directory of markdown
		notes, the "vault". Each tab keeps its own navigation history over
		the vault's folders and files, edits are written back to disk as
		you type, and a preview mode renders the parsed document instead
		of the raw text.

		Run with no arguments to launch the browser. If no vault has been
		chosen yet you will be asked to pick one.
	`),
	Example: "weblib\nweblib --vault ~/notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return vault.Run(appCfg)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.weblib/cfg.yaml)")
	rootCmd.PersistentFlags().
		StringVar(&vaultOverride, "vault", "", "vault directory to browse for this run, without saving it")
}

func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(home + constants.ConfigDir)
		viper.SetConfigName(constants.ConfigFile)
		viper.SetConfigType(constants.ConfigFileType)
		cobra.CheckErr(config.EnsureConfigExists(home))
	}

	// If a config file is found, read it in.
	viper.ReadInConfig()

	path := viper.ConfigFileUsed()
	if path == "" {
		path = config.GetConfigPath(home)
	}
	appCfg, cfgError = config.FromFile(path)
	cobra.CheckErr(cfgError)

	if vaultOverride != "" {
		cobra.CheckErr(appCfg.OverrideVaultDir(vaultOverride))
	}
}
