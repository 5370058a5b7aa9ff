package repository

import (
	"context"
	"time"

	"pos/internal/domain/model"
)

type SaleListFilter struct {
	Page        int
	Limit       int
	From        *time.Time
	To          *time.Time
	PaymentType string
}

// 売上は追記専用。Update / Delete は約束しない。
type SaleRepository interface {
	Create(ctx context.Context, sale model.Sale) error
	FindByID(ctx context.Context, id string) (model.Sale, error)
	// 古い順（時系列）
	List(ctx context.Context, f SaleListFilter) ([]model.Sale, int64, error)
}
