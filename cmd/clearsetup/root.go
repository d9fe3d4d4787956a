// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"clearsetup/internal/config"
	"clearsetup/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// plain disables styled and markdown-rendered output
	plain bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "clearsetup",
		Short: "Environment bootstrapper for the Clear assistant",
		Long: TitleStyle.Render("clearsetup") + SubtitleStyle.Render(" - Environment bootstrapper for the Clear assistant") + `

clearsetup prepares a machine to run the Clear task assistant: it finds an
installed Python interpreter, provisions an isolated 'venv' environment,
installs the assistant's packages (fastapi, uvicorn, pydantic, dateparser),
and prints the commands to start the assistant.

Running it again is safe: a valid existing environment is reused, and
'--force' re-creates it from scratch.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run: clearsetup up
  2. Activate the environment it reports
  3. Start the assistant: python assistant.py`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/clearsetup/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable styled output")

	// Add subcommands
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// loadedConfig is the configuration resolved at startup, never nil after
// initRootConfig has run.
var loadedConfig = config.DefaultConfig()

// initRootConfig reads in the config file and applies it under the flags.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	loadedConfig = cfg

	// Apply config values only where the flag was not set.
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if !plain {
		plain = cfg.UI.Plain
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
