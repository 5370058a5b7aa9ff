package usecase

import (
	"context"
	"net/http"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"github.com/shopspring/decimal"
)

// CheckoutUsecase はレジの確定処理。
// 唯一、複数コレクション（在庫・売上・債務）をまたいで書き込む場所で、
// 全部成功か全部なかったことにするかの二択しかない。
type CheckoutUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
	clock Clock
}

func NewCheckoutUsecase(tx repo.TransactionManager, idGen IDGenerator, clock Clock) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, idGen: idGen, clock: clock}
}

type CheckoutItemInput struct {
	ProductID string
	Quantity  int64
	// カートに入れた時点の単価。nil なら確定時点の商品価格を使う
	UnitPrice *decimal.Decimal
}

type CheckoutInput struct {
	Items       []CheckoutItemInput
	PaymentType model.PaymentType
	// CREDIT（掛け売り）のときだけ必須
	CustomerID string
	Note       string
}

func validateCheckoutInput(in CheckoutInput) error {
	if len(in.Items) == 0 {
		return NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	switch in.PaymentType {
	case model.PaymentTypeCash, model.PaymentTypeCard, model.PaymentTypeCredit:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid payment_type")
	}

	if in.PaymentType == model.PaymentTypeCredit && in.CustomerID == "" {
		return NewHTTPError(http.StatusBadRequest, "customer required")
	}

	for _, item := range in.Items {
		if item.ProductID == "" {
			return NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		if item.Quantity < 1 {
			return NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
			return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
		}
	}
	return nil
}

// Checkout はカートを確定して売上を作る。
//  1. 商品ごとに在庫を確定時に再チェックして減らす（足りなければ全体を中止）
//  2. 明細スナップショット付きの売上を作成
//  3. CREDIT なら DEBT 取引を追記して顧客残高を増やす
//
// 1〜3は同一トランザクション。途中で失敗したら在庫・売上・債務のどれにも痕跡を残さない。
func (u *CheckoutUsecase) Checkout(ctx context.Context, in CheckoutInput) (SaleOutput, error) {
	if err := validateCheckoutInput(in); err != nil {
		return SaleOutput{}, err
	}

	var out SaleOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := u.clock.Now()
		saleID := u.idGen.NewID(model.IDPrefixSale)

		saleItems := make([]model.SaleItem, 0, len(in.Items))
		total := decimal.Zero

		for _, item := range in.Items {
			p, err := r.Products().FindByID(ctx, item.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "product not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//在庫減算（足りないなら false）。失敗時は前の減算ごとロールバック
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest, "out of stock")
			}

			//販売単価：カート追加時点の価格があればそれ、無ければ現在価格
			price := p.Price
			if item.UnitPrice != nil {
				price = *item.UnitPrice
			}

			saleItems = append(saleItems, model.SaleItem{
				ProductID:           item.ProductID,
				ProductNameSnapshot: p.Name,
				UnitPriceSnapshot:   price,
				Quantity:            item.Quantity,
			})

			total = total.Add(price.Mul(decimal.NewFromInt(item.Quantity)))
		}

		sale := model.Sale{
			ID:          saleID,
			TotalAmount: total,
			PaymentType: in.PaymentType,
			CreatedAt:   now,
		}
		if in.PaymentType == model.PaymentTypeCredit {
			customerID := in.CustomerID
			sale.CustomerID = &customerID
		}

		if err := r.Sales().Create(ctx, sale); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.SaleItems().CreateBulk(ctx, saleID, saleItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if in.PaymentType == model.PaymentTypeCredit {
			//顧客が消えていたら売上・在庫ごとロールバック
			if _, err := r.Customers().FindByID(ctx, in.CustomerID); err != nil {
				if err == repo.ErrNotFound {
					return NewHTTPError(http.StatusNotFound, "customer not found")
				}
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//合計0の掛け売りは債務が発生しないので追記しない
			if total.IsPositive() {
				t := model.DebtTransaction{
					ID:         u.idGen.NewID(model.IDPrefixDebtTransaction),
					CustomerID: in.CustomerID,
					Type:       model.DebtTransactionDebt,
					Amount:     total,
					Note:       in.Note,
					SaleID:     &saleID,
					CreatedAt:  now,
				}
				if err := r.DebtTransactions().Create(ctx, t); err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				if err := r.Customers().AddToBalance(ctx, in.CustomerID, total); err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
			}
		}

		out = toSaleOutput(sale, saleItems)
		return nil
	})

	if err != nil {
		return SaleOutput{}, err
	}
	return out, nil
}
