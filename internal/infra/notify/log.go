package notify

import (
	"context"
	"log/slog"

	"estate-marketplace/internal/usecase/shared"
)

// LogPublisher writes events to the application log. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event shared.Event) error {
	attrs := []slog.Attr{
		slog.String("type", string(event.Type)),
		slog.String("unit_id", event.UnitID.String()),
		slog.String("project_id", event.ProjectID.String()),
		slog.String("actor_id", event.ActorID.String()),
		slog.String("recipient_id", event.RecipientID.String()),
	}
	if event.DealID != nil {
		attrs = append(attrs, slog.String("deal_id", event.DealID.String()))
	}
	if event.Amount != nil {
		attrs = append(attrs, slog.String("amount", event.Amount.String()))
	}
	if event.Reason != "" {
		attrs = append(attrs, slog.String("reason", event.Reason))
	}
	p.logger.LogAttrs(ctx, slog.LevelInfo, "notification", attrs...)
	return nil
}
