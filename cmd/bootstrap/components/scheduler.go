package components

import (
	"context"
	"log/slog"
	"time"

	"estate-marketplace/internal/pkg/config"
	"estate-marketplace/internal/usecase/sweeper"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(RegisterSweeper),
)

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

// RegisterSweeper runs the expiry sweeper on SWEEPER_SCHEDULE for the
// lifetime of the app. Overlapping runs are skipped.
func RegisterSweeper(lc fx.Lifecycle, cfg config.Config, s *sweeper.ExpirySweeper, logger *slog.Logger) error {
	if !cfg.Sweeper.Enabled {
		logger.Info("expiry sweeper disabled")
		return nil
	}

	clog := cronLogger{logger: logger.With("component", "sweeper")}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(clog),
		cron.WithChain(cron.Recover(clog), cron.SkipIfStillRunning(clog)),
	)

	runCtx, cancel := context.WithCancel(context.Background())
	_, err := c.AddFunc(cfg.Sweeper.Schedule, func() {
		report, err := s.Run(runCtx)
		if err != nil {
			logger.Error("sweeper run failed", "error", err)
			return
		}
		if report.Expired > 0 || report.Failed > 0 || report.Reconciled > 0 {
			logger.Info("sweeper run finished",
				"expired", report.Expired,
				"skipped", report.Skipped,
				"failed", report.Failed,
				"reconciled", report.Reconciled)
		}
	})
	if err != nil {
		cancel()
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			logger.Info("expiry sweeper scheduled", "schedule", cfg.Sweeper.Schedule)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}
