package usecase

import (
	"context"
	"net/http"
	"time"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportUsecase は台帳の読み取り専用の集計。書き込みはしない。
type ReportUsecase struct {
	saleRepo     repo.SaleRepository
	saleItemRepo repo.SaleItemRepository
	productRepo  repo.ProductRepository
	customerRepo repo.CustomerRepository
}

func NewReportUsecase(
	saleRepo repo.SaleRepository,
	saleItemRepo repo.SaleItemRepository,
	productRepo repo.ProductRepository,
	customerRepo repo.CustomerRepository,
) *ReportUsecase {
	return &ReportUsecase{
		saleRepo:     saleRepo,
		saleItemRepo: saleItemRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

type SummaryInput struct {
	From *time.Time
	To   *time.Time
}

type SummaryOutput struct {
	Revenue         decimal.Decimal `json:"revenue"`
	CostOfGoodsSold decimal.Decimal `json:"cost_of_goods_sold"`
	Profit          decimal.Decimal `json:"profit"`
	SaleCount       int64           `json:"sale_count"`
	OutstandingDebt decimal.Decimal `json:"outstanding_debt"`
}

// Summary は期間内の売上・原価・粗利と、未回収の債務残高を返す。
// 原価は「現在の」商品原価 × 数量で計算する（販売時点の原価は保存していない）。
// 商品の原価を後から変えると過去の粗利も変わる点は現行仕様どおり。
// 削除済み商品も同じ扱いで原価0になる（＝削除すると過去の粗利が膨らむ）。
func (u *ReportUsecase) Summary(ctx context.Context, in SummaryInput) (SummaryOutput, error) {
	if in.From != nil && in.To != nil && in.From.After(*in.To) {
		return SummaryOutput{}, NewHTTPError(http.StatusBadRequest, "from must be <= to")
	}

	sales, total, err := u.saleRepo.List(ctx, repo.SaleListFilter{
		From: in.From,
		To:   in.To,
	})
	if err != nil {
		return SummaryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	revenue := decimal.Zero
	cogs := decimal.Zero

	for _, s := range sales {
		revenue = revenue.Add(s.TotalAmount)

		items, err := u.saleItemRepo.ListBySaleID(ctx, s.ID)
		if err != nil {
			return SummaryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		for _, it := range items {
			p, err := u.productRepo.FindByID(ctx, it.ProductID)
			if err == repo.ErrNotFound {
				// 削除済み商品は原価0として扱う
				continue
			}
			if err != nil {
				return SummaryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
			}
			cogs = cogs.Add(p.Cost.Mul(decimal.NewFromInt(it.Quantity)))
		}
	}

	customers, err := u.customerRepo.List(ctx, repo.CustomerListQuery{})
	if err != nil {
		return SummaryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outstanding := decimal.Zero
	for _, c := range customers {
		outstanding = outstanding.Add(c.Balance)
	}

	return SummaryOutput{
		Revenue:         revenue,
		CostOfGoodsSold: cogs,
		Profit:          revenue.Sub(cogs),
		SaleCount:       total,
		OutstandingDebt: outstanding,
	}, nil
}

// 在庫が閾値以下の商品
func (u *ReportUsecase) LowStockProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}
