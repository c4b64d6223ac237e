package project

import (
	"estate-marketplace/internal/domain/user"
	"estate-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound = errs.Classify(errs.ErrNotFound, "project not found")
	ErrNotProjectKind  = errs.Classify(errs.ErrValidation, "units can only be added to a project")
	ErrNotOwner        = errs.Classify(errs.ErrForbidden, "only the project owner or an admin may do this")
)

type Kind string

const (
	KindProject Kind = "project"
	KindListing Kind = "listing"
)

// Project is the container that owns units. Its lifecycle is managed
// elsewhere; this service only reads ownership and adjusts unitCount.
type Project struct {
	ID        uuid.UUID
	Name      string
	Kind      Kind
	OwnerID   *uuid.UUID
	AddedBy   uuid.UUID
	UnitCount int
}

// Owner resolves the explicit developer owner, falling back to whoever added the project.
func (p Project) Owner() uuid.UUID {
	if p.OwnerID != nil && *p.OwnerID != uuid.Nil {
		return *p.OwnerID
	}
	return p.AddedBy
}

func (p Project) CanManage(actor user.Actor) bool {
	return actor.IsAdmin() || actor.Is(p.Owner())
}

func (p Project) Authorize(actor user.Actor) error {
	if !p.CanManage(actor) {
		return ErrNotOwner
	}
	return nil
}

func (p Project) AcceptsUnits() error {
	if p.Kind != KindProject {
		return ErrNotProjectKind
	}
	return nil
}
