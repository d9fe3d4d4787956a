// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"clearsetup/internal/setup"

	"github.com/spf13/cobra"
)

var (
	upForce       bool
	upSkipInstall bool
	upEnvDir      string
	upPython      string
)

// upCmd runs the full bootstrap sequence.
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Provision the assistant's environment and install its packages",
	Long: `Run the full bootstrap sequence:

  1. Locate a Python interpreter (python3 preferred, python fallback)
  2. Create the isolated 'venv' environment (or reuse a valid existing one)
  3. Upgrade pip, then install fastapi, uvicorn, pydantic, and dateparser
  4. Print the activation and start commands for this platform

The sequence stops at the first failure and exits non-zero; no success
report is printed unless every step actually succeeded.`,
	RunE: runUp,
}

func init() {
	upCmd.Flags().BoolVar(&upForce, "force", false, "re-create the environment even if a valid one exists")
	upCmd.Flags().BoolVar(&upSkipInstall, "skip-install", false, "provision and activate only, skip package installation")
	upCmd.Flags().StringVar(&upEnvDir, "env-dir", "", "environment directory (default \"venv\")")
	upCmd.Flags().StringVar(&upPython, "python", "", "explicit python interpreter to use")
}

func runUp(cmd *cobra.Command, args []string) error {
	opts := setup.Options{
		EnvDir:      loadedConfig.EnvDir,
		Force:       upForce || loadedConfig.ForceRecreate,
		SkipInstall: upSkipInstall,
		Python:      loadedConfig.Python,
		Plain:       plain,
		Verbose:     verbose,
		Out:         cmd.OutOrStdout(),
	}
	if upEnvDir != "" {
		opts.EnvDir = upEnvDir
	}
	if upPython != "" {
		opts.Python = upPython
	}

	if err := setup.New(opts).Run(cmd.Context()); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}
