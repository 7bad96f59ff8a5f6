// Package scheduler runs type package installs concurrently.
package scheduler

import (
	"context"
	"runtime"
	"time"

	"go.trai.ch/typeget/internal/core/domain"
	"go.trai.ch/typeget/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options configures a scheduler run.
type Options struct {
	// Parallelism bounds the number of concurrent installs.
	// Values below one use the CPU count.
	Parallelism int

	// Timeout bounds each install. Zero means no timeout.
	Timeout time.Duration
}

// Scheduler fans install jobs out to an installer.
type Scheduler struct {
	installer ports.Installer
	logger    ports.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(installer ports.Installer, logger ports.Logger) *Scheduler {
	return &Scheduler{
		installer: installer,
		logger:    logger,
	}
}

// Run installs every job exactly once, at most opts.Parallelism at a time.
//
// Jobs are independent: a failing job is logged and never stops or affects
// the others. Once ctx is done, jobs that have not started are skipped.
// Run returns only the error of ctx, so an interrupted run is reported while
// individual install failures are not.
func (s *Scheduler) Run(ctx context.Context, jobs []domain.InstallJob, opts Options) error {
	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	var g errgroup.Group
	g.SetLimit(parallelism)

	for _, job := range jobs {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			s.install(ctx, job, opts.Timeout)
			return nil
		})
	}

	_ = g.Wait()
	return ctx.Err()
}

func (s *Scheduler) install(ctx context.Context, job domain.InstallJob, timeout time.Duration) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := s.installer.Install(ctx, job); err != nil {
		s.logger.Error(zerr.With(zerr.Wrap(err, "failed to install type package"), "package", job.Package))
	}
}
