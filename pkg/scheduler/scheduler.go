// Package scheduler runs report generation periodically.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/hfbriefer/pkg/domain"
	"github.com/umputun/hfbriefer/pkg/selector"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Runner produces one report per call
type Runner interface {
	Run(ctx context.Context) (*domain.Report, error)
}

// Scheduler triggers the runner every interval. Runs never overlap.
type Scheduler struct {
	runner     Runner
	interval   time.Duration
	runOnStart bool

	runMu  sync.Mutex // serializes runs from the ticker and RunNow
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Params contains scheduler dependencies and settings
type Params struct {
	Runner     Runner
	Interval   time.Duration
	RunOnStart bool
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.Interval <= 0 {
		params.Interval = 24 * time.Hour
	}
	return &Scheduler{
		runner:     params.Runner,
		interval:   params.Interval,
		runOnStart: params.RunOnStart,
	}
}

// Start begins periodic report generation in background
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.worker(ctx)

	lgr.Printf("[INFO] scheduler started with interval %v, run on start: %v", s.interval, s.runOnStart)
}

// Stop gracefully stops the scheduler, waits for the active run to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RunNow generates a report synchronously, waits for a run in progress to complete first
func (s *Scheduler) RunNow(ctx context.Context) (*domain.Report, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.runner.Run(ctx)
}

func (s *Scheduler) worker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if s.runOnStart {
		s.scheduledRun(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scheduledRun(ctx)
		}
	}
}

// scheduledRun makes a report and logs the outcome, errors never stop the scheduler
func (s *Scheduler) scheduledRun(ctx context.Context) {
	start := time.Now()
	report, err := s.RunNow(ctx)
	switch {
	case err == nil:
		lgr.Printf("[INFO] scheduled report %d for %s created in %v", report.ID, report.ItemName, time.Since(start).Round(time.Second))
	case errors.Is(err, selector.ErrExhausted):
		lgr.Printf("[INFO] nothing new to report: %v", err)
	case ctx.Err() != nil:
		lgr.Printf("[DEBUG] scheduled run canceled: %v", err)
	default:
		lgr.Printf("[ERROR] scheduled report generation failed: %v", err)
	}
}
