// SPDX-License-Identifier: MPL-2.0

package pip

import (
	"context"
	"io"

	"clearsetup/internal/execx"
	"clearsetup/internal/issue"
	"clearsetup/internal/venv"
)

// Packages is the assistant's dependency set: web framework, ASGI server,
// validation library, natural-language date parser. Installed as one batch,
// unpinned.
var Packages = []string{"fastapi", "uvicorn", "pydantic", "dateparser"}

// Installer runs pip inside the provisioned environment.
type Installer struct {
	runner execx.Runner

	// Out receives pip's streamed output. Nil discards it.
	Out io.Writer
}

// NewInstaller creates an Installer backed by the real runner.
func NewInstaller(out io.Writer) *Installer {
	return NewInstallerWith(execx.NewRunner(), out)
}

// NewInstallerWith creates an Installer with an injected runner.
// Intended for tests.
func NewInstallerWith(runner execx.Runner, out io.Writer) *Installer {
	return &Installer{runner: runner, Out: out}
}

// UpgradeSelf upgrades pip itself inside the environment. Must complete
// before InstallPackages.
func (i *Installer) UpgradeSelf(ctx context.Context, ec *venv.ExecContext) error {
	return i.run(ctx, ec, "upgrade pip", "install", "--upgrade", "pip")
}

// InstallPackages installs the full dependency set as a single batch call.
func (i *Installer) InstallPackages(ctx context.Context, ec *venv.ExecContext) error {
	args := append([]string{"install"}, Packages...)
	return i.run(ctx, ec, "install assistant packages", args...)
}

func (i *Installer) run(ctx context.Context, ec *venv.ExecContext, operation string, pipArgs ...string) error {
	result := i.runner.Run(ctx, execx.Spec{
		Path:   ec.Python,
		Args:   append([]string{"-m", "pip"}, pipArgs...),
		Env:    ec.Env,
		Stdout: i.Out,
		Stderr: i.Out,
	})
	if !result.Ok() {
		return issue.NewErrorContext().
			WithOperation(operation).
			WithSuggestion("Check your network connection and PyPI availability").
			WithSuggestion("Re-run setup; the environment is reused on retry").
			Wrap(result.ErrOrExit()).
			BuildError()
	}
	return nil
}
