package contact

import (
	"context"
	"time"

	"go-insights/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// RetentionSweeper removes contact submissions older than the configured
// retention window. It runs nightly; a zero window disables it.
type RetentionSweeper struct {
	Repo ContactRepository
	Log  *zap.Logger
	Days int

	cron *cron.Cron
}

func NewRetentionSweeper(repo ContactRepository, cfg *config.Config, log *zap.Logger) *RetentionSweeper {
	return &RetentionSweeper{
		Repo: repo,
		Log:  log,
		Days: cfg.ContactRetentionDays,
	}
}

func (s *RetentionSweeper) Start() error {
	if s.Days <= 0 {
		s.Log.Info("contact retention sweep disabled")
		return nil
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc("0 3 * * *", s.Sweep); err != nil {
		return err
	}
	s.cron.Start()

	s.Log.Info("contact retention sweep scheduled", zap.Int("retention_days", s.Days))
	return nil
}

func (s *RetentionSweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *RetentionSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -s.Days)
	deleted, err := s.Repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.Log.Error("retention sweep failed", zap.Error(err))
		return
	}
	if deleted > 0 {
		s.Log.Info("retention sweep removed contacts",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff))
	}
}

// RegisterRetentionSweeper hooks the sweeper into the application lifecycle.
func RegisterRetentionSweeper(lc fx.Lifecycle, sweeper *RetentionSweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(ctx context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
