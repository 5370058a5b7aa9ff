package repository

import (
	"context"
	"errors"

	"pos/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Page  int
	Limit int
	Q     string
}

// 商品の永続化（保存・取得）だけを約束。
// 販売による在庫減算は InventoryRepository 側。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (model.Product, error)
	// 在庫が閾値以下の商品
	ListLowStock(ctx context.Context) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id string) error
}
