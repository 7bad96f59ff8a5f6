// Package app implements the application layer for typeget.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/typeget/internal/core/domain"
	"go.trai.ch/typeget/internal/core/ports"
	"go.trai.ch/typeget/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	settingsLoader ports.SettingsLoader
	manifestLoader ports.ManifestLoader
	scheduler      *scheduler.Scheduler
	logger         ports.Logger
	stdout         io.Writer
}

// New creates a new App instance.
func New(
	settingsLoader ports.SettingsLoader,
	manifestLoader ports.ManifestLoader,
	sched *scheduler.Scheduler,
	log ports.Logger,
) *App {
	return &App{
		settingsLoader: settingsLoader,
		manifestLoader: manifestLoader,
		scheduler:      sched,
		logger:         log,
		stdout:         os.Stdout,
	}
}

// WithOutput sets the writer that dry runs print to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configuration for the Run and Plan methods.
// Zero values fall back to the settings file, then to the defaults.
type RunOptions struct {
	Dir            string
	PackageManager string
	Jobs           int
	Timeout        time.Duration
	DryRun         bool
	LogJSON        bool
}

// Plan is the resolved set of installs for one run.
type Plan struct {
	Jobs    []domain.InstallJob
	Options scheduler.Options
}

// Packages returns the type packages of the plan, in install order.
func (p Plan) Packages() []string {
	packages := make([]string, len(p.Jobs))
	for i, job := range p.Jobs {
		packages[i] = job.Package
	}
	return packages
}

// Plan loads the settings and the manifest and derives the install jobs.
func (a *App) Plan(opts RunOptions) (Plan, error) {
	a.configureLogging(opts)

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	settings, err := a.settingsLoader.Load(dir)
	if err != nil {
		return Plan{}, zerr.Wrap(err, "failed to load settings")
	}
	settings = mergeSettings(settings, opts).Normalize()

	manifest, err := a.manifestLoader.Load(dir)
	if err != nil {
		return Plan{}, zerr.Wrap(err, "failed to load manifest")
	}

	names := domain.CollectDependencyNames(manifest)
	packages := domain.TypePackages(names, settings.Skip)

	return Plan{
		Jobs: domain.NewInstallJobs(settings.PackageManager, packages),
		Options: scheduler.Options{
			Parallelism: settings.Parallelism,
			Timeout:     settings.Timeout,
		},
	}, nil
}

// Run installs the type package of every dependency in the manifest.
//
// Individual install failures are logged and do not fail the run. Run fails
// when the settings or the manifest cannot be loaded, or when ctx is
// cancelled before every install finished.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	plan, err := a.Plan(opts)
	if err != nil {
		return err
	}

	if len(plan.Jobs) == 0 {
		a.logger.Info("No dependencies specified")
		return nil
	}

	if opts.DryRun {
		return a.List(plan, a.stdout)
	}

	a.logger.Info(fmt.Sprintf("installing %d type packages with %s", len(plan.Jobs), plan.Jobs[0].Manager))

	if err := a.scheduler.Run(ctx, plan.Jobs, plan.Options); err != nil {
		return errors.Join(domain.ErrInstallInterrupted, zerr.Wrap(err, "install run was interrupted"))
	}

	return nil
}

// List writes the packages of plan to w, one per line.
func (a *App) List(plan Plan, w io.Writer) error {
	for _, pkg := range plan.Packages() {
		if _, err := fmt.Fprintln(w, pkg); err != nil {
			return zerr.Wrap(err, "failed to write package list")
		}
	}
	return nil
}

func (a *App) configureLogging(opts RunOptions) {
	if !opts.LogJSON {
		return
	}
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(true)
	}
}

func mergeSettings(settings domain.Settings, opts RunOptions) domain.Settings {
	if opts.PackageManager != "" {
		settings.PackageManager = opts.PackageManager
	}
	if opts.Jobs > 0 {
		settings.Parallelism = opts.Jobs
	}
	if opts.Timeout > 0 {
		settings.Timeout = opts.Timeout
	}
	return settings
}
