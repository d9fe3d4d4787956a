// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"clearsetup/internal/config"

	"github.com/spf13/cobra"
)

// configCmd is the `clearsetup config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage clearsetup configuration",
	Long: `Manage clearsetup configuration.

Configuration is stored in:
  - Linux: ~/.config/clearsetup/config.toml
  - macOS: ~/Library/Application Support/clearsetup/config.toml
  - Windows: %APPDATA%\clearsetup\config.toml

All keys are optional; defaults reproduce the documented bootstrap behavior.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "env_dir = %q\n", loadedConfig.EnvDir)
			fmt.Fprintf(out, "force_recreate = %v\n", loadedConfig.ForceRecreate)
			fmt.Fprintf(out, "python = %q\n", loadedConfig.Python)
			fmt.Fprintf(out, "\n[ui]\nverbose = %v\nplain = %v\n", loadedConfig.UI.Verbose, loadedConfig.UI.Plain)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})
}
