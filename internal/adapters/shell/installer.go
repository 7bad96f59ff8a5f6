// Package shell provides an installer that runs the package manager as a child process.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/typeget/internal/core/domain"
	"go.trai.ch/zerr"
)

// Installer implements ports.Installer using os/exec.
// The child process shares the configured standard streams.
type Installer struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewInstaller creates an Installer that inherits the process's standard streams.
func NewInstaller() *Installer {
	return &Installer{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Install runs "<manager> install <package> --save-dev" and waits for it to exit.
// The exit status of the package manager is not inspected.
func (i *Installer) Install(ctx context.Context, job domain.InstallJob) error {
	cmd := exec.CommandContext(ctx, job.Manager, job.Args()...) //nolint:gosec // manager is user configured
	cmd.Stdin = i.Stdin
	cmd.Stdout = i.Stdout
	cmd.Stderr = i.Stderr

	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return interrupted(ctx, job)
		}
		err = zerr.With(zerr.Wrap(err, "failed to start "+job.Manager), "package", job.Package)
		return errors.Join(domain.ErrProcessSpawnFailed, zerr.With(err, "command", job.String()))
	}

	_ = cmd.Wait()

	if ctx.Err() != nil {
		return interrupted(ctx, job)
	}
	return nil
}

func interrupted(ctx context.Context, job domain.InstallJob) error {
	err := zerr.With(zerr.Wrap(ctx.Err(), "install did not finish"), "package", job.Package)
	return errors.Join(domain.ErrInstallInterrupted, err)
}
