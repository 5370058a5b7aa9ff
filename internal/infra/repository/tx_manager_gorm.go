package repository

import (
	"context"

	repo "pos/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products  repo.ProductRepository
	inventory repo.InventoryRepository
	sales     repo.SaleRepository
	saleItems repo.SaleItemRepository
	customers repo.CustomerRepository
	debtTxs   repo.DebtTransactionRepository
}

func (r *txReposGorm) Products() repo.ProductRepository                 { return r.products }
func (r *txReposGorm) Inventory() repo.InventoryRepository              { return r.inventory }
func (r *txReposGorm) Sales() repo.SaleRepository                       { return r.sales }
func (r *txReposGorm) SaleItems() repo.SaleItemRepository               { return r.saleItems }
func (r *txReposGorm) Customers() repo.CustomerRepository               { return r.customers }
func (r *txReposGorm) DebtTransactions() repo.DebtTransactionRepository { return r.debtTxs }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:  NewProductGormRepository(tx),
			inventory: NewInventoryGormRepository(tx),
			sales:     NewSaleGormRepository(tx),
			saleItems: NewSaleItemGormRepository(tx),
			customers: NewCustomerGormRepository(tx),
			debtTxs:   NewDebtTransactionGormRepository(tx),
		}
		return fn(r)
	})
}
