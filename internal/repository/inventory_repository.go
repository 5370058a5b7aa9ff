package repository

import (
	"context"

	"pos/internal/domain/model"
)

type InventoryRepository interface {
	// 在庫の現在値を設定
	SetStock(ctx context.Context, productID string, newStock int64) error

	// 在庫が足りるときだけ減算。
	// 売り越し防止はここが唯一の強制ポイントで、0へのクランプはしない。
	DecreaseStockIfEnough(ctx context.Context, productID string, qty int64) (bool, error)

	// 調整履歴作成
	CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error

	// 商品の調整履歴（新しい順）
	ListAdjustmentsByProductID(ctx context.Context, productID string) ([]model.InventoryAdjustment, error)
}
