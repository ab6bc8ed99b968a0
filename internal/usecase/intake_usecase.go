package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"precad_service/internal/domain/entities"
	"precad_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IIntakeUseCase covers the pre-registration record lifecycle outside
// the saga: creation from form data and retrieval.

type IIntakeUseCase interface {
	Create(ctx context.Context, in entities.Intake) (entities.Intake, error)
	GetByID(ctx context.Context, id string) (entities.Intake, error)
}

type IntakeUseCase struct {
	intakeRepo interfaces.IIntakeRepository
	reconciler *StatusReconciler
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(intakeRepo interfaces.IIntakeRepository) *IntakeUseCase {
	return &IntakeUseCase{
		intakeRepo: intakeRepo,
		reconciler: NewStatusReconciler(),
	}
}

// Create validates the form data and persists a new intake with a
// canonical status and normalized CPF.
func (u *IntakeUseCase) Create(ctx context.Context, in entities.Intake) (entities.Intake, error) {
	if vr := ValidateIntake(in); !vr.Valid {
		return entities.Intake{}, fmt.Errorf("%w: %s", ErrIntakeValidation, strings.Join(vr.Errors, "; "))
	}

	in.ID = uuid.NewString()
	in.CPF = entities.NormalizeCPF(in.CPF)
	in.RecomputeSegments()
	u.reconciler.Apply(&in)

	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now
	if in.ApplicationDate.IsZero() {
		in.ApplicationDate = now
	}

	created, err := u.intakeRepo.Create(ctx, in)
	if err != nil {
		return entities.Intake{}, err
	}
	log.Printf("[intake][usecase] intake created id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func (u *IntakeUseCase) GetByID(ctx context.Context, id string) (entities.Intake, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Intake{}, ErrInvalidIntakeID
	}

	in, err := u.intakeRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Intake{}, err
	}
	if in.ID == "" {
		return entities.Intake{}, ErrIntakeNotFound
	}

	u.reconciler.Apply(&in)
	return in, nil
}
