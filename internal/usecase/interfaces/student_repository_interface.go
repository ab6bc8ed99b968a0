package interfaces

import (
	"context"
	"precad_service/internal/domain/entities"
)

// IStudentRepository abstracts Student persistence, keyed naturally by
// CPF within this workflow's search scope.

type IStudentRepository interface {
	Insert(ctx context.Context, s entities.Student) (entities.Student, error)
	GetByID(ctx context.Context, id string) (entities.Student, error)
	GetByCPF(ctx context.Context, cpf string) (entities.Student, error)
	Save(ctx context.Context, s entities.Student) (entities.Student, error)
}
