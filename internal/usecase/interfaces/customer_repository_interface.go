package interfaces

import (
	"context"
	"precad_service/internal/domain/entities"
)

// ICustomerRepository abstracts Customer persistence.
//
// GetByTaxID resolves the natural key (normalized CPF); the saga must
// call it before Insert to keep the one-customer-per-tax-id invariant.

type ICustomerRepository interface {
	Insert(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByTaxID(ctx context.Context, taxID string) (entities.Customer, error)
	Save(ctx context.Context, c entities.Customer) (entities.Customer, error)
}
