package repository

import (
	"context"

	"pos/internal/domain/model"
)

type SupplierRepository interface {
	List(ctx context.Context) ([]model.Supplier, error)
	FindByID(ctx context.Context, id string) (model.Supplier, error)
	Create(ctx context.Context, s model.Supplier) (model.Supplier, error)
	Update(ctx context.Context, s model.Supplier) error
	Delete(ctx context.Context, id string) error
}
