package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Products() ProductRepository
	Inventory() InventoryRepository
	Sales() SaleRepository
	SaleItems() SaleItemRepository
	Customers() CustomerRepository
	DebtTransactions() DebtTransactionRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// checkout のように複数コレクションをまたぐ変更は必ずこの中で行う。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
