package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/synergysphere/backend/internal/journal"
)

// SweeperConfig controls journal retention.
type SweeperConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

// JournalSweeper periodically prunes journal entries past their retention.
type JournalSweeper struct {
	journal *journal.Journal
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     SweeperConfig
}

func NewJournalSweeper(j *journal.Journal, logger *zap.Logger, cfg SweeperConfig) *JournalSweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 7 * 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &JournalSweeper{
		journal: j,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = s.cron.AddFunc(schedule, func() {
		if err := s.Sweep(); err != nil {
			s.logger.Error("journal sweep failed", zap.Error(err))
		}
	})

	return s
}

// Start launches the cron scheduler.
func (s *JournalSweeper) Start() {
	if s == nil || s.cron == nil {
		return
	}
	s.cron.Start()
	s.logger.Info("journal sweeper started", zap.Duration("interval", s.cfg.Interval))
}

// Stop gracefully stops the scheduler.
func (s *JournalSweeper) Stop(ctx context.Context) {
	if s == nil || s.cron == nil {
		return
	}
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.logger.Info("journal sweeper stopped")
}

// Sweep prunes entries older than the retention window.
func (s *JournalSweeper) Sweep() error {
	if s == nil || s.journal == nil {
		return nil
	}
	cutoff := time.Now().Add(-s.cfg.Retention)
	if err := s.journal.Prune(cutoff); err != nil {
		return err
	}
	size, err := s.journal.Size()
	if err != nil {
		return err
	}
	s.logger.Debug("journal swept", zap.Time("cutoff", cutoff), zap.Int("remaining", size))
	return nil
}
