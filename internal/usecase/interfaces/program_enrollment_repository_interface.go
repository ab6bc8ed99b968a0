package interfaces

import (
	"context"
	"precad_service/internal/domain/entities"
)

// IProgramEnrollmentRepository abstracts Program Enrollment persistence.
//
// GetByStudentAndProgram resolves the (student, program) natural pair so
// the saga can update instead of duplicating.

type IProgramEnrollmentRepository interface {
	Insert(ctx context.Context, e entities.ProgramEnrollment) (entities.ProgramEnrollment, error)
	GetByStudentAndProgram(ctx context.Context, studentID, programID string) (entities.ProgramEnrollment, error)
	Save(ctx context.Context, e entities.ProgramEnrollment) (entities.ProgramEnrollment, error)
}
