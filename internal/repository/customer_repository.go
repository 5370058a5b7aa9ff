package repository

import (
	"context"

	"pos/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 顧客一覧の検索
type CustomerListQuery struct {
	Q string
}

type CustomerRepository interface {
	// 残高が大きい順
	List(ctx context.Context, q CustomerListQuery) ([]model.Customer, error)
	FindByID(ctx context.Context, id string) (model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error

	// 残高へ差分を加算（負の delta で減算）。
	// 債務取引の追記と同一トランザクションで呼ぶこと。
	AddToBalance(ctx context.Context, customerID string, delta decimal.Decimal) error
}
