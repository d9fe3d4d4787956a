// SPDX-License-Identifier: MPL-2.0

package setup

import (
	"context"
	"io"
	"os"

	"clearsetup/internal/pip"
	"clearsetup/internal/pyruntime"
	"clearsetup/internal/venv"
	"clearsetup/pkg/platform"

	"github.com/charmbracelet/log"
)

type (
	// Options configures one bootstrap run.
	Options struct {
		// EnvDir is the environment directory, relative to the
		// invocation directory.
		EnvDir string
		// Force removes an existing environment instead of reusing it.
		Force bool
		// SkipInstall stops after provisioning and activation.
		SkipInstall bool
		// Python overrides interpreter discovery with an explicit path.
		Python string
		// Plain disables styled output.
		Plain bool
		// Verbose enables debug logging to stderr.
		Verbose bool
		// Out receives operator-facing output. Defaults to os.Stdout.
		Out io.Writer
	}

	runtimeLocator interface {
		Locate(ctx context.Context) (*pyruntime.Handle, error)
	}

	envProvisioner interface {
		Provision(ctx context.Context, py *pyruntime.Handle, dir string, force bool) (*venv.Environment, bool, error)
	}

	depInstaller interface {
		UpgradeSelf(ctx context.Context, ec *venv.ExecContext) error
		InstallPackages(ctx context.Context, ec *venv.ExecContext) error
	}

	// Orchestrator drives the bootstrap sequence as a fail-fast chain.
	Orchestrator struct {
		opts        Options
		class       platform.Class
		locator     runtimeLocator
		provisioner envProvisioner
		installer   depInstaller
		reporter    *Reporter
		logger      *log.Logger
		environ     func() []string
	}
)

// locatorFunc adapts a function to the runtimeLocator interface.
type locatorFunc func(ctx context.Context) (*pyruntime.Handle, error)

func (f locatorFunc) Locate(ctx context.Context) (*pyruntime.Handle, error) {
	return f(ctx)
}

// New creates an Orchestrator wired to the real locator, provisioner, and
// installer for the current host.
func New(opts Options) *Orchestrator {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.EnvDir == "" {
		opts.EnvDir = venv.DefaultDir
	}

	class := platform.Detect()

	var locator runtimeLocator = pyruntime.NewLocator()
	if opts.Python != "" {
		override := opts.Python
		base := pyruntime.NewLocator()
		locator = locatorFunc(func(ctx context.Context) (*pyruntime.Handle, error) {
			return base.LocateExplicit(ctx, override)
		})
	}

	return &Orchestrator{
		opts:        opts,
		class:       class,
		locator:     locator,
		provisioner: venv.NewProvisioner(),
		installer:   pip.NewInstaller(opts.Out),
		reporter:    NewReporter(opts.Out, class, opts.Plain),
		logger:      newLogger(opts.Verbose),
		environ:     os.Environ,
	}
}

// NewWith creates an Orchestrator with injected stage components.
// Intended for tests.
func NewWith(opts Options, class platform.Class, locator runtimeLocator, provisioner envProvisioner, installer depInstaller, environ func() []string) *Orchestrator {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.EnvDir == "" {
		opts.EnvDir = venv.DefaultDir
	}
	return &Orchestrator{
		opts:        opts,
		class:       class,
		locator:     locator,
		provisioner: provisioner,
		installer:   installer,
		reporter:    NewReporter(opts.Out, class, opts.Plain),
		logger:      newLogger(opts.Verbose),
		environ:     environ,
	}
}

// Run executes the full bootstrap sequence. The first failing stage aborts
// the chain; the returned error names the stage and carries remediation
// suggestions where available.
func (o *Orchestrator) Run(ctx context.Context) error {
	py, err := o.locator.Locate(ctx)
	if err != nil {
		return err
	}
	o.logger.Debug("runtime located", "name", py.Name, "path", py.Path, "version", py.Version)
	o.reporter.RuntimeFound(py)

	o.reporter.CreatingEnvironment(o.opts.EnvDir)
	env, reused, err := o.provisioner.Provision(ctx, py, o.opts.EnvDir, o.opts.Force)
	if err != nil {
		return err
	}
	if reused {
		o.logger.Debug("environment reused", "dir", env.Dir)
		o.reporter.ReusingEnvironment(env.Dir)
	} else {
		o.logger.Debug("environment created", "dir", env.Dir)
	}

	ec, err := venv.NewExecContext(env, o.environ())
	if err != nil {
		return err
	}
	o.logger.Debug("environment activated", "python", ec.Python)
	o.reporter.Activating(env.ActivationScript())

	if !o.opts.SkipInstall {
		o.reporter.Installing(pip.Packages)
		if err := o.installer.UpgradeSelf(ctx, ec); err != nil {
			return err
		}
		if err := o.installer.InstallPackages(ctx, ec); err != nil {
			return err
		}
		o.logger.Debug("packages installed", "count", len(pip.Packages))
	}

	o.reporter.Instructions(env.Dir)
	return nil
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "setup",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
