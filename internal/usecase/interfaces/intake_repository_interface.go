package interfaces

import (
	"context"
	"precad_service/internal/domain/entities"
)

// IIntakeRepository abstracts persistence for the pre-registration
// record.
//
// Lookups return the zero value with a nil error when nothing matches;
// callers decide whether "not found" is an error.

type IIntakeRepository interface {
	Create(ctx context.Context, in entities.Intake) (entities.Intake, error)
	GetByID(ctx context.Context, id string) (entities.Intake, error)
	Save(ctx context.Context, in entities.Intake) (entities.Intake, error)
	// ListByStudentLink returns sibling intakes referencing the same
	// Student whose status differs from excludeStatus.
	ListByStudentLink(ctx context.Context, studentID string, excludeStatus entities.IntakeStatus) ([]entities.Intake, error)
}
