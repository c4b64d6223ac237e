package commands

import (
	"context"
	"log/slog"

	"estate-marketplace/internal/domain/deal"
	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/domain/unit"
	"estate-marketplace/internal/infra"
	"estate-marketplace/internal/pkg/errs"
	"estate-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCancelForbidden     = errs.Classify(errs.ErrForbidden, "only the holder, the project owner or an admin may cancel this booking")
	ErrDuplicateUnitNumber = errs.Classify(errs.ErrConflict, "unit number already exists in this project")
)

// ReservationResult carries the state after a command. Deal is nil when the
// command did not touch a deal or the deal update was deferred to reconciliation.
type ReservationResult struct {
	Unit    *unit.Unit
	Project *project.Project
	Deal    *deal.Deal
}

// loader resolves the unit and its project with not-found mapping shared by all commands.
type loader struct {
	repos shared.Repositories
}

func (l loader) unitAndProject(ctx context.Context, unitID uuid.UUID) (*unit.Unit, *project.Project, error) {
	u, err := l.repos.Units().FindByID(ctx, unitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, unit.ErrUnitNotFound
		}
		return nil, nil, errs.Wrap(err, "failed to load unit")
	}
	p, err := l.project(ctx, u.ProjectID())
	if err != nil {
		return nil, nil, err
	}
	return u, p, nil
}

func (l loader) project(ctx context.Context, projectID uuid.UUID) (*project.Project, error) {
	p, err := l.repos.Projects().FindByID(ctx, projectID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, project.ErrProjectNotFound
		}
		return nil, errs.Wrap(err, "failed to load project")
	}
	return p, nil
}

// applyTransition performs the compare-and-swap write of a transition already
// applied to u in memory.
func applyTransition(ctx context.Context, units shared.UnitRepository, u *unit.Unit, expected unit.StateToken) error {
	if err := units.ApplyTransition(ctx, u, expected); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return unit.ErrConcurrentUpdate
		}
		return errs.Wrap(err, "failed to persist unit transition")
	}
	return nil
}

func bumpInquiries(ctx context.Context, units shared.UnitRepository, logger *slog.Logger, unitID uuid.UUID) {
	if err := units.IncrementCounters(ctx, unitID, 0, 1); err != nil {
		logger.Warn("failed to record unit inquiry", "unit_id", unitID, "error", err)
	}
}

func dealID(d *deal.Deal) *uuid.UUID {
	if d == nil {
		return nil
	}
	id := d.ID()
	return &id
}
