// Package scheduler refreshes the external catalogs and the job snapshot on
// a fixed interval.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type Refresher interface {
	RefreshLocations(ctx context.Context) (int, error)
	RefreshSkills(ctx context.Context) (int, error)
	RefreshJobSnapshot(ctx context.Context) (int, error)
}

const cycleTimeout = 5 * time.Minute

// Scheduler wraps robfig/cron. Overlapping cycles are skipped.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	logger    *log.Logger
	spec      string
}

func New(refresher Refresher, intervalHours int, logger *log.Logger) (*Scheduler, error) {
	if refresher == nil {
		return nil, errors.New("nil refresher")
	}
	if intervalHours <= 0 {
		return nil, fmt.Errorf("invalid refresh interval: %d", intervalHours)
	}
	if logger == nil {
		logger = log.Default()
	}
	cl := cron.PrintfLogger(logger)
	return &Scheduler{
		cron:      cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		refresher: refresher,
		logger:    logger,
		spec:      fmt.Sprintf("@every %dh", intervalHours),
	}, nil
}

func (s *Scheduler) Spec() string { return s.spec }

// Start registers the refresh job and starts the cron loop. The first cycle
// runs at the first tick; startup population is done by the catalog.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	s.logger.Printf("[Scheduler] started spec=%s", s.spec)
	return nil
}

// Stop halts the loop and waits for a running cycle to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Printf("[Scheduler] stopped")
}

// RunOnce runs every refresh step. A failing step is logged and does not
// stop the others.
func (s *Scheduler) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, cycleTimeout)
	defer cancel()

	s.logger.Printf("[Scheduler] refresh cycle started")
	steps := []struct {
		name string
		fn   func(context.Context) (int, error)
	}{
		{"locations", s.refresher.RefreshLocations},
		{"skills", s.refresher.RefreshSkills},
		{"jobs", s.refresher.RefreshJobSnapshot},
	}
	for _, st := range steps {
		if ctx.Err() != nil {
			s.logger.Printf("[Scheduler] cycle aborted before %s: %v", st.name, ctx.Err())
			return
		}
		n, err := st.fn(ctx)
		if err != nil {
			s.logger.Printf("[Scheduler] refresh %s failed: %v", st.name, err)
			continue
		}
		s.logger.Printf("[Scheduler] refresh %s stored=%d", st.name, n)
	}
	s.logger.Printf("[Scheduler] refresh cycle complete")
}
