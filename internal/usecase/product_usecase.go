package usecase

import (
	"context"
	"net/http"
	"strings"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	tx            repo.TransactionManager
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
	idGen         IDGenerator
}

// DI
func NewProductUsecase(
	tx repo.TransactionManager,
	productRepo repo.ProductRepository,
	inventoryRepo repo.InventoryRepository,
	idGen IDGenerator,
) *ProductUsecase {
	return &ProductUsecase{
		tx:            tx,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		idGen:         idGen,
	}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Page  int
	Limit int
	Q     string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:  in.Page,
		Limit: in.Limit,
		Q:     strings.TrimSpace(in.Q),
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// レジのバーコードスキャン用
func (u *ProductUsecase) GetProductByBarcode(ctx context.Context, barcode string) (model.Product, error) {
	if strings.TrimSpace(barcode) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid barcode")
	}

	p, err := u.productRepo.FindByBarcode(ctx, strings.TrimSpace(barcode))
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type CreateProductInput struct {
	Barcode           string
	Name              string
	Price             decimal.Decimal
	Cost              decimal.Decimal
	Stock             int64
	LowStockThreshold int64
	SupplierID        *string
	ImageURL          string
}

func (u *ProductUsecase) validateProductInput(in CreateProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Cost.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "cost must be >= 0")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if in.LowStockThreshold < 0 {
		return NewHTTPError(http.StatusBadRequest, "low_stock_threshold must be >= 0")
	}
	return nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if err := u.validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		ID:                u.idGen.NewID(model.IDPrefixProduct),
		Barcode:           strings.TrimSpace(in.Barcode),
		Name:              strings.TrimSpace(in.Name),
		Price:             in.Price,
		Cost:              in.Cost,
		Stock:             in.Stock,
		LowStockThreshold: in.LowStockThreshold,
		SupplierID:        in.SupplierID,
		ImageURL:          in.ImageURL,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID string, in CreateProductInput) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := u.validateProductInput(in); err != nil {
		return err
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:                productID,
		Barcode:           strings.TrimSpace(in.Barcode),
		Name:              strings.TrimSpace(in.Name),
		Price:             in.Price,
		Cost:              in.Cost,
		Stock:             in.Stock,
		LowStockThreshold: in.LowStockThreshold,
		SupplierID:        in.SupplierID,
		ImageURL:          in.ImageURL,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 商品削除。過去の売上は明細のスナップショットで自立しているので触らない。
func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.SoftDelete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 在庫を「現在値」に更新し、調整履歴も残す（入荷・棚卸し用。販売経路はcheckout）。
// 在庫の更新と履歴の追記は同一トランザクション。片方だけ残ることはない。
func (u *ProductUsecase) SetStock(ctx context.Context, productID string, newStock int64, reason string) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if newStock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if strings.TrimSpace(reason) == "" {
		return NewHTTPError(http.StatusBadRequest, "reason required")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//変更前の在庫（before）
		p, err := r.Products().FindByID(ctx, productID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//在庫の現在値を更新
		if err := r.Inventory().SetStock(ctx, productID, newStock); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//履歴を作成（差分）。失敗したら在庫更新ごと巻き戻す
		adj := model.InventoryAdjustment{
			ProductID: productID,
			Delta:     newStock - p.Stock,
			Reason:    strings.TrimSpace(reason),
		}
		if err := r.Inventory().CreateAdjustment(ctx, adj); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})
}

func (u *ProductUsecase) ListAdjustments(ctx context.Context, productID string) ([]model.InventoryAdjustment, error) {
	if productID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	adjs, err := u.inventoryRepo.ListAdjustmentsByProductID(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return adjs, nil
}
