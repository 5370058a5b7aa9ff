package repository

import (
	"context"
	"errors"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"gorm.io/gorm"
)

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

func (r *SaleGormRepository) Create(ctx context.Context, sale model.Sale) error {
	if err := r.db.WithContext(ctx).Create(&sale).Error; err != nil {
		return err
	}
	return nil
}

func (r *SaleGormRepository) FindByID(ctx context.Context, id string) (model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Sale{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Sale{}, err
	}
	return s, nil
}

// 時系列（古い順）
func (r *SaleGormRepository) List(ctx context.Context, f repo.SaleListFilter) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Sale{})

	if f.From != nil {
		tx = tx.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		tx = tx.Where("created_at <= ?", *f.To)
	}
	if f.PaymentType != "" {
		tx = tx.Where("payment_type = ?", f.PaymentType)
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.Sale{}, 0, err
	}

	tx = tx.Order("created_at asc").Order("id asc")

	// Limit 0 以下はページングなし（集計用の全件取得）
	if f.Limit > 0 {
		offset := (f.Page - 1) * f.Limit
		tx = tx.Offset(offset).Limit(f.Limit)
	}
	if err := tx.Find(&sales).Error; err != nil {
		return []model.Sale{}, 0, err
	}

	return sales, total, nil
}
