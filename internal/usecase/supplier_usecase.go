package usecase

import (
	"context"
	"net/http"
	"strings"

	"pos/internal/domain/model"
	repo "pos/internal/repository"
)

type SupplierUsecase struct {
	supplierRepo repo.SupplierRepository
	idGen        IDGenerator
}

func NewSupplierUsecase(supplierRepo repo.SupplierRepository, idGen IDGenerator) *SupplierUsecase {
	return &SupplierUsecase{supplierRepo: supplierRepo, idGen: idGen}
}

type SupplierInput struct {
	Name  string
	Phone string
}

func (u *SupplierUsecase) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	suppliers, err := u.supplierRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return suppliers, nil
}

func (u *SupplierUsecase) CreateSupplier(ctx context.Context, in SupplierInput) (model.Supplier, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	s, err := u.supplierRepo.Create(ctx, model.Supplier{
		ID:    u.idGen.NewID(model.IDPrefixSupplier),
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
	})
	if err != nil {
		return model.Supplier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *SupplierUsecase) UpdateSupplier(ctx context.Context, supplierID string, in SupplierInput) error {
	if supplierID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid supplier id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}

	err := u.supplierRepo.Update(ctx, model.Supplier{
		ID:    supplierID,
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *SupplierUsecase) DeleteSupplier(ctx context.Context, supplierID string) error {
	if supplierID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid supplier id")
	}

	err := u.supplierRepo.Delete(ctx, supplierID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
