package shared

import (
	"context"
	"time"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/domain/unit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	Repositories
	// Within: Full transaction for multi-row writes with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Repositories outside Within run each statement on its own (autocommit).
type Repositories interface {
	Units() UnitRepository
	Deals() DealRepository
	Projects() ProjectRepository
}

type Tx interface {
	Repositories
}

type UnitRepository interface {
	Create(ctx context.Context, u *unit.Unit) error
	FindByID(ctx context.Context, id uuid.UUID) (*unit.Unit, error)
	// ApplyTransition persists status, hold and version of u only if the stored
	// unit still matches expected. Zero matched rows is a KindConflict error.
	ApplyTransition(ctx context.Context, u *unit.Unit, expected unit.StateToken) error
	UpdateDetails(ctx context.Context, u *unit.Unit) error
	// Delete logically removes an available unit that still matches expected.
	Delete(ctx context.Context, id uuid.UUID, expected unit.StateToken, at time.Time) error
	IncrementCounters(ctx context.Context, id uuid.UUID, views, inquiries int64) error
	FindExpiredHolds(ctx context.Context, status unit.Status, before time.Time, limit int) ([]*unit.Unit, error)
	// FindUnrecordedHolds lists booked or reserved units placed before
	// createdBefore that have no open booking deal.
	FindUnrecordedHolds(ctx context.Context, createdBefore time.Time, limit int) ([]*unit.Unit, error)
}

// DealRepository only ever touches booking deals through the update and
// lookup methods; visit deals are write-once.
type DealRepository interface {
	Create(ctx context.Context, d *deal.Deal) error
	// UpdateByUnit patches whatever open booking deal unitID has whose status
	// is in statusFilter and returns it, or nil when none matched. Only safe
	// while the caller holds the unit.
	UpdateByUnit(ctx context.Context, unitID uuid.UUID, statusFilter []deal.Status, patch deal.Patch) (*deal.Deal, error)
	// UpdateByID patches one deal only while its status is in statusFilter.
	UpdateByID(ctx context.Context, dealID uuid.UUID, statusFilter []deal.Status, patch deal.Patch) (*deal.Deal, error)
	FindOpenByUnit(ctx context.Context, unitID uuid.UUID) (*deal.Deal, error)
	// FindStale lists open booking deals whose unit no longer carries the matching hold.
	FindStale(ctx context.Context, limit int) ([]StaleDeal, error)
}

type StaleDeal struct {
	DealID     uuid.UUID
	UnitID     uuid.UUID
	DealStatus deal.Status
	// UnitStatus is nil when the unit has been deleted.
	UnitStatus       *unit.Status
	PaymentReference string
	DepositAmount    decimal.Decimal
}

type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error)
	AdjustUnitCount(ctx context.Context, id uuid.UUID, delta int) error
}
