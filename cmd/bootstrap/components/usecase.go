package components

import (
	"fmt"
	"log/slog"

	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/pkg/clock"
	"estate-marketplace/internal/pkg/config"
	"estate-marketplace/internal/usecase"
	"estate-marketplace/internal/usecase/commands"
	"estate-marketplace/internal/usecase/queries"
	"estate-marketplace/internal/usecase/shared"
	"estate-marketplace/internal/usecase/sweeper"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewHoldPolicy,
	NewDealSync,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewInventoryCommands,
		commands.NewReservationCommands,
		NewExpirySweeper,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUnitQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewHoldPolicy(cfg config.Config) (unit.HoldPolicy, error) {
	percent, err := decimal.NewFromString(cfg.Reservation.DefaultDownPaymentPercent)
	if err != nil {
		return unit.HoldPolicy{}, fmt.Errorf("invalid RESERVATION_DEFAULT_DOWN_PAYMENT_PERCENT: %w", err)
	}
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return unit.HoldPolicy{}, fmt.Errorf("RESERVATION_DEFAULT_DOWN_PAYMENT_PERCENT must be within 0..100, got %s", percent)
	}
	return unit.HoldPolicy{
		TTL:                       cfg.Reservation.HoldTTL,
		DefaultDownPaymentPercent: percent,
	}, nil
}

func NewDealSync(repos shared.Repositories, cfg config.Config, logger *slog.Logger) shared.DealSync {
	return shared.DealSync{
		Deals:    repos.Deals(),
		Attempts: cfg.Reservation.DealSyncRetries,
		Backoff:  cfg.Reservation.DealSyncBackoff,
		Timeout:  cfg.Reservation.FollowUpTimeout,
		Logger:   logger,
	}
}

func NewExpirySweeper(
	repos shared.Repositories,
	dealSync shared.DealSync,
	notifier shared.Notifier,
	invalidator shared.StatsInvalidator,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *sweeper.ExpirySweeper {
	return sweeper.NewExpirySweeper(repos, dealSync, notifier, invalidator, clk, logger, sweeper.Options{
		BatchSize:   cfg.Sweeper.BatchSize,
		UnitTimeout: cfg.Sweeper.UnitTimeout,
		RecordGrace: cfg.Sweeper.RecordGrace,
	})
}
