package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rlopes-dev/estoque-painel/internal/config"
)

// Refresher is the orchestrator entry point driven by the schedule.
type Refresher interface {
	RefreshAll(ctx context.Context)
}

// Scheduler triggers periodic full panel refreshes. The dashboard stays
// pull-based: the schedule only re-runs the same fetch cycle a user-triggered
// refresh would.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	cfg       config.RefreshConfig
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.RefreshConfig, refresher Refresher, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []cron.Option{}
	if cfg.Timezone != "" {
		if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
			opts = append(opts, cron.WithLocation(loc))
		} else {
			logger.Warn("invalid timezone, using local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		}
	}

	return &Scheduler{
		cron:      cron.New(opts...),
		refresher: refresher,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers the refresh job and starts the cron loop. A missing
// schedule disables periodic refreshes entirely.
func (s *Scheduler) Start() {
	if s.cfg.CronSchedule == "" {
		s.logger.Info("periodic refresh disabled")
		return
	}

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.refreshAll); err != nil {
		s.logger.Error("failed to schedule periodic refresh", zap.Error(err))
		return
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))
	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) refreshAll() {
	s.logger.Info("running scheduled refresh")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s.refresher.RefreshAll(ctx)
}
