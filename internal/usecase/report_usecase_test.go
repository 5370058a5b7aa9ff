package usecase_test

import (
	"context"
	"testing"
	"time"

	"pos/internal/domain/model"
	repo "pos/internal/repository"
	"pos/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReportFixture() (*SaleRepoMock, *SaleItemRepoMock, *ProductRepoMock, *CustomerRepoMock, *usecase.ReportUsecase) {
	sales := new(SaleRepoMock)
	saleItems := new(SaleItemRepoMock)
	products := new(ProductRepoMock)
	customers := new(CustomerRepoMock)
	uc := usecase.NewReportUsecase(sales, saleItems, products, customers)
	return sales, saleItems, products, customers, uc
}

func TestSummary_RevenueCogsAndDebt(t *testing.T) {
	sales, saleItems, products, customers, uc := newReportFixture()

	sales.On("List", mock.Anything, repo.SaleListFilter{}).Return([]model.Sale{
		{ID: "SA1", TotalAmount: decimal.NewFromInt(300)},
		{ID: "SA2", TotalAmount: decimal.NewFromInt(200)},
	}, int64(2), nil)

	saleItems.On("ListBySaleID", mock.Anything, "SA1").Return([]model.SaleItem{
		{ProductID: "P1", Quantity: 3},
	}, nil)
	saleItems.On("ListBySaleID", mock.Anything, "SA2").Return([]model.SaleItem{
		{ProductID: "P2", Quantity: 2},
	}, nil)

	//原価は現在値を参照する
	products.On("FindByID", mock.Anything, "P1").
		Return(model.Product{ID: "P1", Cost: decimal.NewFromInt(60)}, nil)
	products.On("FindByID", mock.Anything, "P2").
		Return(model.Product{ID: "P2", Cost: decimal.NewFromInt(40)}, nil)

	customers.On("List", mock.Anything, repo.CustomerListQuery{}).Return([]model.Customer{
		{ID: "C1", Balance: decimal.NewFromInt(150)},
		{ID: "C2", Balance: decimal.NewFromInt(50)},
	}, nil)

	out, err := uc.Summary(context.Background(), usecase.SummaryInput{})
	assert.NoError(t, err)
	assert.True(t, out.Revenue.Equal(decimal.NewFromInt(500)), "revenue=%s", out.Revenue)
	// 60*3 + 40*2 = 260
	assert.True(t, out.CostOfGoodsSold.Equal(decimal.NewFromInt(260)), "cogs=%s", out.CostOfGoodsSold)
	assert.True(t, out.Profit.Equal(decimal.NewFromInt(240)), "profit=%s", out.Profit)
	assert.Equal(t, int64(2), out.SaleCount)
	assert.True(t, out.OutstandingDebt.Equal(decimal.NewFromInt(200)), "debt=%s", out.OutstandingDebt)
}

// 削除済み商品は原価0として集計を続行する
func TestSummary_DeletedProductSkipped(t *testing.T) {
	sales, saleItems, products, customers, uc := newReportFixture()

	sales.On("List", mock.Anything, repo.SaleListFilter{}).Return([]model.Sale{
		{ID: "SA1", TotalAmount: decimal.NewFromInt(100)},
	}, int64(1), nil)
	saleItems.On("ListBySaleID", mock.Anything, "SA1").Return([]model.SaleItem{
		{ProductID: "P_GONE", Quantity: 1},
	}, nil)
	products.On("FindByID", mock.Anything, "P_GONE").Return(model.Product{}, repo.ErrNotFound)
	customers.On("List", mock.Anything, repo.CustomerListQuery{}).Return([]model.Customer{}, nil)

	out, err := uc.Summary(context.Background(), usecase.SummaryInput{})
	assert.NoError(t, err)
	assert.True(t, out.CostOfGoodsSold.IsZero())
	assert.True(t, out.Profit.Equal(decimal.NewFromInt(100)))
}

func TestSummary_InvalidRange(t *testing.T) {
	_, _, _, _, uc := newReportFixture()

	from := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Summary(context.Background(), usecase.SummaryInput{From: &from, To: &to})
	assertErrContains(t, err, "from must be <= to")
}

func TestLowStockProducts(t *testing.T) {
	_, _, products, _, uc := newReportFixture()

	products.On("ListLowStock", mock.Anything).Return([]model.Product{
		{ID: "P1", Name: "Cola", Stock: 2, LowStockThreshold: 5},
	}, nil)

	out, err := uc.LowStockProducts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))
}
