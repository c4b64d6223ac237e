package converter

import (
	"estate-marketplace/internal/domain/project"
	sqlc "estate-marketplace/internal/infra/sqlc/generated"
	"estate-marketplace/internal/pkg/pgconv"
)

func ProjectFromRow(row sqlc.Projects) *project.Project {
	return &project.Project{
		ID:        row.ID,
		Name:      row.Name,
		Kind:      project.Kind(row.Kind),
		OwnerID:   pgconv.UUIDPtrFromPgtype(row.OwnerID),
		AddedBy:   row.AddedBy,
		UnitCount: int(row.UnitCount),
	}
}
