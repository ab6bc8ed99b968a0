package interfaces

import (
	"context"
	"precad_service/internal/domain/entities"
)

// IFichaRepository persists the program-specific case records. Fichas
// are insert-only: the saga creates at most one of each per run and
// never updates or deletes them.

type IFichaRepository interface {
	InsertGestante(ctx context.Context, f entities.GestanteFicha) (entities.GestanteFicha, error)
	InsertCrianca(ctx context.Context, f entities.CriancaFicha) (entities.CriancaFicha, error)
}
