package components

import (
	"context"
	"log/slog"

	"estate-marketplace/internal/infra/notify"
	"estate-marketplace/internal/pkg/clock"
	"estate-marketplace/internal/pkg/config"
	"estate-marketplace/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewPublisher,
		NewDispatcher,
		func(d *notify.Dispatcher) shared.Notifier { return d },
	),
)

// NewPublisher picks the RabbitMQ sink when AMQP_URL is set and the log sink otherwise.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (notify.Publisher, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP_URL not set; notifications go to the log")
		return notify.NewLogPublisher(logger), nil
	}

	publisher, err := notify.DialAMQP(cfg.AMQP.URL, cfg.AMQP.Queue, clk)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

func NewDispatcher(lc fx.Lifecycle, publisher notify.Publisher, cfg config.Config, logger *slog.Logger) *notify.Dispatcher {
	d := notify.NewDispatcher(publisher, cfg.AMQP.QueueSize, cfg.AMQP.Workers, cfg.AMQP.PublishTimeout, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
	return d
}
