// Package scheduler runs the periodic income sweep on a cron schedule.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/wallyverse/social-exchange/internal/api/metrics"
	"github.com/wallyverse/social-exchange/internal/core/ports"
)

// IncomeIssuer is the slice of the currency service the scheduler needs.
type IncomeIssuer interface {
	IssuePeriodicIncome(ctx context.Context) (ports.IssueIncomeResult, error)
}

// Scheduler triggers income issuance on a fixed cron expression. Schedules
// are evaluated in UTC so every instance agrees on the period boundary.
type Scheduler struct {
	cron   *cron.Cron
	issuer IncomeIssuer
	log    zerolog.Logger
}

func New(issuer IncomeIssuer, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		issuer: issuer,
		log:    log.With().Str("component", "scheduler").Logger(),
	}
}

// Start registers the sweep job and starts the cron loop in its own
// goroutine. The schedule string accepts standard cron syntax plus
// descriptors such as "@weekly".
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.run)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("schedule", schedule).Msg("income sweep scheduled")
	return nil
}

func (s *Scheduler) run() {
	ctx := context.Background()
	start := time.Now()

	result, err := s.issuer.IssuePeriodicIncome(ctx)
	metrics.ObserveSweep(time.Since(start), result.Processed, result.Failed, result.Skipped)
	if err != nil {
		s.log.Error().Err(err).
			Int("processed", result.Processed).
			Int("failed", result.Failed).
			Msg("income sweep finished with errors")
		return
	}
	if result.Skipped {
		s.log.Info().Msg("income sweep skipped, period already issued")
		return
	}
	s.log.Info().
		Int("processed", result.Processed).
		Int("failed", result.Failed).
		Msg("income sweep finished")
}

// Stop halts the cron loop and waits for a running sweep to complete.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}
