package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	products  repo.ProductRepository
	inventory repo.InventoryRepository
	sales     repo.SaleRepository
	saleItems repo.SaleItemRepository
	customers repo.CustomerRepository
	debtTxs   repo.DebtTransactionRepository
}

func (r *TxReposMock) Products() repo.ProductRepository                 { return r.products }
func (r *TxReposMock) Inventory() repo.InventoryRepository              { return r.inventory }
func (r *TxReposMock) Sales() repo.SaleRepository                       { return r.sales }
func (r *TxReposMock) SaleItems() repo.SaleItemRepository               { return r.saleItems }
func (r *TxReposMock) Customers() repo.CustomerRepository               { return r.customers }
func (r *TxReposMock) DebtTransactions() repo.DebtTransactionRepository { return r.debtTxs }

// =====================
// Repository mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByBarcode(ctx context.Context, barcode string) (model.Product, error) {
	args := m.Called(ctx, barcode)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListLowStock(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) SetStock(ctx context.Context, productID string, newStock int64) error {
	args := m.Called(ctx, productID, newStock)
	return args.Error(0)
}

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID string, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

func (m *InventoryRepoMock) ListAdjustmentsByProductID(ctx context.Context, productID string) ([]model.InventoryAdjustment, error) {
	args := m.Called(ctx, productID)
	adjs, _ := args.Get(0).([]model.InventoryAdjustment)
	return adjs, args.Error(1)
}

type SaleRepoMock struct{ mock.Mock }

func (m *SaleRepoMock) Create(ctx context.Context, sale model.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *SaleRepoMock) FindByID(ctx context.Context, id string) (model.Sale, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Sale)
	return s, args.Error(1)
}

func (m *SaleRepoMock) List(ctx context.Context, f repo.SaleListFilter) ([]model.Sale, int64, error) {
	args := m.Called(ctx, f)
	sales, _ := args.Get(0).([]model.Sale)
	return sales, args.Get(1).(int64), args.Error(2)
}

type SaleItemRepoMock struct{ mock.Mock }

func (m *SaleItemRepoMock) CreateBulk(ctx context.Context, saleID string, items []model.SaleItem) error {
	args := m.Called(ctx, saleID, items)
	return args.Error(0)
}

func (m *SaleItemRepoMock) ListBySaleID(ctx context.Context, saleID string) ([]model.SaleItem, error) {
	args := m.Called(ctx, saleID)
	items, _ := args.Get(0).([]model.SaleItem)
	return items, args.Error(1)
}

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) List(ctx context.Context, q repo.CustomerListQuery) ([]model.Customer, error) {
	args := m.Called(ctx, q)
	customers, _ := args.Get(0).([]model.Customer)
	return customers, args.Error(1)
}

func (m *CustomerRepoMock) FindByID(ctx context.Context, id string) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Customer)
	return created, args.Error(1)
}

func (m *CustomerRepoMock) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) AddToBalance(ctx context.Context, customerID string, delta decimal.Decimal) error {
	args := m.Called(ctx, customerID, delta)
	return args.Error(0)
}

type DebtTxRepoMock struct{ mock.Mock }

func (m *DebtTxRepoMock) Create(ctx context.Context, t model.DebtTransaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *DebtTxRepoMock) ListByCustomerID(ctx context.Context, customerID string) ([]model.DebtTransaction, error) {
	args := m.Called(ctx, customerID)
	txs, _ := args.Get(0).([]model.DebtTransaction)
	return txs, args.Error(1)
}

type SupplierRepoMock struct{ mock.Mock }

func (m *SupplierRepoMock) List(ctx context.Context) ([]model.Supplier, error) {
	args := m.Called(ctx)
	suppliers, _ := args.Get(0).([]model.Supplier)
	return suppliers, args.Error(1)
}

func (m *SupplierRepoMock) FindByID(ctx context.Context, id string) (model.Supplier, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Supplier)
	return s, args.Error(1)
}

func (m *SupplierRepoMock) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Supplier)
	return created, args.Error(1)
}

func (m *SupplierRepoMock) Update(ctx context.Context, s model.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SupplierRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type SettingsRepoMock struct{ mock.Mock }

func (m *SettingsRepoMock) Get(ctx context.Context) (model.StoreSettings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(model.StoreSettings)
	return s, args.Error(1)
}

func (m *SettingsRepoMock) Save(ctx context.Context, s model.StoreSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// =====================
// IDGenerator / Clock（テスト用の決定的な実装）
// =====================

type seqIDGen struct {
	n int
}

func (g *seqIDGen) NewID(prefix string) string {
	g.n++
	return fmt.Sprintf("%s%03d", prefix, g.n)
}

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// =====================
// Helpers
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

// decimal は内部表現が揺れるので DeepEqual ではなく Equal で比較する
func decimalEq(want decimal.Decimal) interface{} {
	return mock.MatchedBy(func(got decimal.Decimal) bool {
		return got.Equal(want)
	})
}
