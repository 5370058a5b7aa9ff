package repository

import (
	"context"

	"pos/internal/domain/model"
)

// 債務台帳の明細。追記専用なので Update / Delete は約束しない。
type DebtTransactionRepository interface {
	Create(ctx context.Context, t model.DebtTransaction) error
	// 新しい順
	ListByCustomerID(ctx context.Context, customerID string) ([]model.DebtTransaction, error)
}
