package market

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// cronLogger writes cron log messages with zerolog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

// Scheduler runs a job on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
}

// NewScheduler creates a scheduler that runs job according to spec.
// Each run is cancelled after timeout.
func NewScheduler(spec string, timeout time.Duration, job func(context.Context) error) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithLogger(cronLogger{}), cron.WithChain(cron.SkipIfStillRunning(cronLogger{}))),
		timeout: timeout,
	}

	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := job(ctx); err != nil {
			log.Error().Err(err).Str("schedule", spec).Msg("Market")
		}
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Start starts the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
