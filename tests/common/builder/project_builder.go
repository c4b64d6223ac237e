//go:build unit || e2e

package builder

import (
	"estate-marketplace/internal/domain/project"

	"github.com/google/uuid"
)

type ProjectBuilder struct {
	ID        uuid.UUID
	Name      string
	Kind      project.Kind
	OwnerID   *uuid.UUID
	AddedBy   uuid.UUID
	UnitCount int
}

func NewProjectBuilder() *ProjectBuilder {
	owner := uuid.New()
	return &ProjectBuilder{
		ID:      uuid.New(),
		Name:    "Palm Residence",
		Kind:    project.KindProject,
		OwnerID: &owner,
		AddedBy: uuid.New(),
	}
}

func (p *ProjectBuilder) With(mutate func(*ProjectBuilder)) *ProjectBuilder {
	mutate(p)
	return p
}

func (p *ProjectBuilder) Build() project.Project {
	return project.Project{
		ID:        p.ID,
		Name:      p.Name,
		Kind:      p.Kind,
		OwnerID:   p.OwnerID,
		AddedBy:   p.AddedBy,
		UnitCount: p.UnitCount,
	}
}

// Owner returns the id that authorisation resolves to.
func (p *ProjectBuilder) Owner() uuid.UUID {
	return p.Build().Owner()
}

// Fluent builder methods
func (p *ProjectBuilder) WithOwner(ownerID uuid.UUID) *ProjectBuilder {
	p.OwnerID = &ownerID
	return p
}

func (p *ProjectBuilder) WithoutOwner() *ProjectBuilder {
	p.OwnerID = nil
	return p
}

func (p *ProjectBuilder) WithUnitCount(n int) *ProjectBuilder {
	p.UnitCount = n
	return p
}

func (p *ProjectBuilder) AsListing() *ProjectBuilder {
	p.Kind = project.KindListing
	return p
}
