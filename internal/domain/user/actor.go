package user

import "github.com/google/uuid"

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

// SystemActor performs background transitions such as hold expiry.
func SystemActor() Actor {
	return Actor{ID: uuid.Nil, Role: RoleAdmin}
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsSystem() bool {
	return a.ID == uuid.Nil && a.Role == RoleAdmin
}

// Is reports whether the actor is the given user. uuid.Nil never matches.
func (a Actor) Is(id uuid.UUID) bool {
	return id != uuid.Nil && a.ID == id
}
