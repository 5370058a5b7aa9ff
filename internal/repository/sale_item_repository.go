package repository

import (
	"context"

	"pos/internal/domain/model"
)

type SaleItemRepository interface {
	CreateBulk(ctx context.Context, saleID string, items []model.SaleItem) error
	ListBySaleID(ctx context.Context, saleID string) ([]model.SaleItem, error)
}
