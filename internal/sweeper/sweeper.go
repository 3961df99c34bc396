// Package sweeper wires up the cron job that periodically downgrades lapsed
// ACTIVE subscriptions to READ_ONLY. Request-path lazy correction covers
// users who show up; the sweep covers everyone else.
package sweeper

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/jobsprint/jobsprint/internal/db"
)

// Sweeper wraps robfig/cron and manages the expiry sweep loop.
type Sweeper struct {
	cron   *cron.Cron
	db     *db.DB
	logger *zap.Logger
	spec   string // cron spec, e.g. "@every 1h"
}

// New creates a Sweeper that fires every intervalHours hours.
func New(database *db.DB, logger *zap.Logger, intervalHours int) *Sweeper {
	return &Sweeper{
		cron:   cron.New(),
		db:     database,
		logger: logger,
		spec:   fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one sweep
// immediately so rows that lapsed while the service was down are corrected
// without waiting for the first tick.
func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info("subscription sweep started", zap.String("spec", s.spec))

	go s.runSweep(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Sweeper) Stop() {
	s.cron.Stop()
	s.logger.Info("subscription sweep stopped")
}

func (s *Sweeper) runSweep(ctx context.Context) {
	swept, err := s.db.SweepExpiredSubscriptions(ctx)
	if err != nil {
		s.logger.Error("subscription sweep failed", zap.Error(err))
		return
	}
	if swept > 0 {
		s.logger.Info("subscriptions moved to read-only", zap.Int64("count", swept))
	}
}
