// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"clearsetup/internal/pyruntime"
	"clearsetup/internal/venv"
	"clearsetup/pkg/platform"

	"github.com/spf13/cobra"
)

// doctorCmd checks the machine without touching the filesystem.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether this machine can run the bootstrap",
	Long: `Probe for a Python interpreter and report what 'up' would do,
without creating anything.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	class := platform.Detect()

	fmt.Fprintln(out, SubtitleStyle.Render("platform: ")+class.String())

	locator := pyruntime.NewLocator()
	h, err := locator.Locate(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Fprintln(out, SuccessStyle.Render("runtime:  ")+h.Name+" ("+h.Version+") at "+h.Path)

	envDir := loadedConfig.EnvDir
	if venv.IsValid(envDir, class) {
		fmt.Fprintln(out, SuccessStyle.Render("env:      ")+envDir+" exists and would be reused")
	} else {
		fmt.Fprintln(out, SubtitleStyle.Render("env:      ")+envDir+" would be created")
	}

	return nil
}
