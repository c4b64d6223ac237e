package commands

import (
	"context"
	"log/slog"

	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/domain/user"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/pkg/clock"
	"estate-marketplace/internal/pkg/errs"
	"estate-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type InventoryCommands interface {
	CreateUnit(ctx context.Context, projectID uuid.UUID, actor user.Actor, details unit.Details) (*ReservationResult, error)
	// CreateUnitsBulk inserts all units or none.
	CreateUnitsBulk(ctx context.Context, projectID uuid.UUID, actor user.Actor, details []unit.Details) ([]*unit.Unit, *project.Project, error)
	UpdateUnit(ctx context.Context, unitID uuid.UUID, actor user.Actor, patch unit.Patch) (*ReservationResult, error)
	DeleteUnit(ctx context.Context, unitID uuid.UUID, actor user.Actor) error
}

var ErrEmptyBatch = errs.Classify(errs.ErrValidation, "at least one unit is required")

type inventoryCommandsImpl struct {
	uow         shared.UnitOfWork
	load        loader
	invalidator shared.StatsInvalidator
	clock       clock.Clock
	logger      *slog.Logger
}

func NewInventoryCommands(uow shared.UnitOfWork, invalidator shared.StatsInvalidator, clock clock.Clock, logger *slog.Logger) InventoryCommands {
	return &inventoryCommandsImpl{
		uow:         uow,
		load:        loader{repos: uow},
		invalidator: invalidator,
		clock:       clock,
		logger:      logger,
	}
}

func (i *inventoryCommandsImpl) CreateUnit(ctx context.Context, projectID uuid.UUID, actor user.Actor, details unit.Details) (*ReservationResult, error) {
	units, p, err := i.CreateUnitsBulk(ctx, projectID, actor, []unit.Details{details})
	if err != nil {
		return nil, err
	}
	return &ReservationResult{Unit: units[0], Project: p}, nil
}

func (i *inventoryCommandsImpl) CreateUnitsBulk(ctx context.Context, projectID uuid.UUID, actor user.Actor, details []unit.Details) ([]*unit.Unit, *project.Project, error) {
	if len(details) == 0 {
		return nil, nil, ErrEmptyBatch
	}
	p, err := i.load.project(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	if err := p.Authorize(actor); err != nil {
		return nil, nil, err
	}
	if err := p.AcceptsUnits(); err != nil {
		return nil, nil, err
	}

	now := i.clock.Now()
	units := make([]*unit.Unit, 0, len(details))
	numbers := make(map[string]struct{}, len(details))
	for idx, d := range details {
		u, err := unit.New(p.ID, d, now)
		if err != nil {
			return nil, nil, errs.Wrapf(err, "unit %d", idx)
		}
		number := u.Details().UnitNumber
		if _, dup := numbers[number]; dup {
			return nil, nil, errs.Wrapf(ErrDuplicateUnitNumber, "unit %d", idx)
		}
		numbers[number] = struct{}{}
		units = append(units, u)
	}

	err = i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, u := range units {
			if err := tx.Units().Create(ctx, u); err != nil {
				return err
			}
		}
		return tx.Projects().AdjustUnitCount(ctx, p.ID, len(units))
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, nil, ErrDuplicateUnitNumber
		}
		return nil, nil, errs.Wrap(err, "failed to create units")
	}

	p.UnitCount += len(units)
	i.invalidator.Invalidate(ctx, p.ID)
	i.logger.Info("units created", "project_id", p.ID, "count", len(units), "actor_id", actor.ID)
	return units, p, nil
}

func (i *inventoryCommandsImpl) UpdateUnit(ctx context.Context, unitID uuid.UUID, actor user.Actor, patch unit.Patch) (*ReservationResult, error) {
	u, p, err := i.load.unitAndProject(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if err := p.Authorize(actor); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return &ReservationResult{Unit: u, Project: p}, nil
	}

	if err := u.Edit(patch, i.clock.Now()); err != nil {
		return nil, err
	}
	if err := i.uow.Units().UpdateDetails(ctx, u); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, unit.ErrUnitNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateUnitNumber
		}
		return nil, errs.Wrap(err, "failed to update unit")
	}

	if patch.Price != nil {
		i.invalidator.Invalidate(ctx, p.ID)
	}
	return &ReservationResult{Unit: u, Project: p}, nil
}

func (i *inventoryCommandsImpl) DeleteUnit(ctx context.Context, unitID uuid.UUID, actor user.Actor) error {
	u, p, err := i.load.unitAndProject(ctx, unitID)
	if err != nil {
		return err
	}
	if err := p.Authorize(actor); err != nil {
		return err
	}
	if err := u.CheckDeletable(); err != nil {
		return err
	}

	expected := u.StateToken()
	err = i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Units().Delete(ctx, u.ID(), expected, i.clock.Now()); err != nil {
			return err
		}
		return tx.Projects().AdjustUnitCount(ctx, p.ID, -1)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return unit.ErrUnitInUse
		}
		return errs.Wrap(err, "failed to delete unit")
	}

	i.invalidator.Invalidate(ctx, p.ID)
	i.logger.Info("unit deleted", "unit_id", u.ID(), "project_id", p.ID, "actor_id", actor.ID)
	return nil
}
