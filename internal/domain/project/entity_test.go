//go:build unit

package project_test

import (
	"testing"

	"estate-marketplace/internal/domain/project"
	"estate-marketplace/internal/domain/user"
	"estate-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOwner(t *testing.T) {
	owner := uuid.New()
	addedBy := uuid.New()

	testCases := []struct {
		name     string
		project  project.Project
		expected uuid.UUID
	}{
		{name: "explicit owner", project: project.Project{OwnerID: &owner, AddedBy: addedBy}, expected: owner},
		{name: "falls back to added-by", project: project.Project{AddedBy: addedBy}, expected: addedBy},
		{name: "nil owner id falls back", project: project.Project{OwnerID: &uuid.Nil, AddedBy: addedBy}, expected: addedBy},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.project.Owner())
		})
	}
}

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	p := project.Project{ID: uuid.New(), Kind: project.KindProject, OwnerID: &owner, AddedBy: uuid.New()}

	assert.NoError(t, p.Authorize(user.NewActor(owner, user.RoleDeveloper)))
	assert.NoError(t, p.Authorize(user.NewActor(uuid.New(), user.RoleAdmin)))

	err := p.Authorize(user.NewActor(p.AddedBy, user.RoleDeveloper))
	assert.ErrorIs(t, err, project.ErrNotOwner, "added-by is ignored when an explicit owner exists")
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestAcceptsUnits(t *testing.T) {
	assert.NoError(t, project.Project{Kind: project.KindProject}.AcceptsUnits())

	err := project.Project{Kind: project.KindListing}.AcceptsUnits()
	assert.ErrorIs(t, err, project.ErrNotProjectKind)
	assert.ErrorIs(t, err, errs.ErrValidation)
}
