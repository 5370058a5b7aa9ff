package usecase

import (
	"context"
	"net/http"
	"time"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"github.com/shopspring/decimal"
)

// 売上の参照系。書き込みは CheckoutUsecase だけ。
type SaleUsecase struct {
	saleRepo     repo.SaleRepository
	saleItemRepo repo.SaleItemRepository
}

func NewSaleUsecase(saleRepo repo.SaleRepository, saleItemRepo repo.SaleItemRepository) *SaleUsecase {
	return &SaleUsecase{saleRepo: saleRepo, saleItemRepo: saleItemRepo}
}

type SaleItemOutput struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

type SaleOutput struct {
	ID          string            `json:"id"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	PaymentType model.PaymentType `json:"payment_type"`
	CustomerID  *string           `json:"customer_id,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	Items       []SaleItemOutput  `json:"items"`
}

func toSaleOutput(s model.Sale, items []model.SaleItem) SaleOutput {
	outItems := make([]SaleItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, SaleItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})
	}

	return SaleOutput{
		ID:          s.ID,
		TotalAmount: s.TotalAmount,
		PaymentType: s.PaymentType,
		CustomerID:  s.CustomerID,
		CreatedAt:   s.CreatedAt,
		Items:       outItems,
	}
}

type ListSalesInput struct {
	Page        int
	Limit       int
	From        *time.Time
	To          *time.Time
	PaymentType string
}

type SaleListOutput struct {
	Items []SaleOutput `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

func (u *SaleUsecase) ListSales(ctx context.Context, in ListSalesInput) (SaleListOutput, error) {
	if in.Page < 1 {
		return SaleListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return SaleListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	switch in.PaymentType {
	case "", string(model.PaymentTypeCash), string(model.PaymentTypeCard), string(model.PaymentTypeCredit):
	default:
		return SaleListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment_type")
	}

	sales, total, err := u.saleRepo.List(ctx, repo.SaleListFilter{
		Page:        in.Page,
		Limit:       in.Limit,
		From:        in.From,
		To:          in.To,
		PaymentType: in.PaymentType,
	})
	if err != nil {
		return SaleListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]SaleOutput, 0, len(sales))
	for _, s := range sales {
		items, err := u.saleItemRepo.ListBySaleID(ctx, s.ID)
		if err != nil {
			return SaleListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, toSaleOutput(s, items))
	}

	return SaleListOutput{
		Items: outs,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *SaleUsecase) GetSaleDetail(ctx context.Context, saleID string) (SaleOutput, error) {
	if saleID == "" {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sale id")
	}

	s, err := u.saleRepo.FindByID(ctx, saleID)
	if err == repo.ErrNotFound {
		return SaleOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return SaleOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.saleItemRepo.ListBySaleID(ctx, saleID)
	if err != nil {
		return SaleOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toSaleOutput(s, items), nil
}
