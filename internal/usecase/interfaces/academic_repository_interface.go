package interfaces

import (
	"context"
	"precad_service/internal/domain/entities"
)

// IAcademicRepository reads the academic reference records owned by the
// school side of the platform. This service never writes them.

type IAcademicRepository interface {
	GetStudentGroup(ctx context.Context, id string) (entities.StudentGroup, error)
	GetProgram(ctx context.Context, id string) (entities.Program, error)
	GetAcademicYear(ctx context.Context, id string) (entities.AcademicYear, error)
	GetAcademicTerm(ctx context.Context, id string) (entities.AcademicTerm, error)
	ListStudentGroups(ctx context.Context, q entities.GroupQuery) ([]entities.StudentGroup, error)
}
