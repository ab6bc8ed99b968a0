package interfaces

import (
	"context"
	"precad_service/internal/domain/entities"
)

// IInterviewRepository removes the interview record tied to a course
// slot when an age rejection invalidates a selection that already
// reached the interview stage.

type IInterviewRepository interface {
	DeleteForSlot(ctx context.Context, intakeID string, slot entities.SlotKey) error
}
