package repository

import (
	"context"

	"pos/internal/domain/model"

	"gorm.io/gorm"
)

type SaleItemGormRepository struct {
	db *gorm.DB
}

func NewSaleItemGormRepository(db *gorm.DB) *SaleItemGormRepository {
	return &SaleItemGormRepository{db: db}
}

func (r *SaleItemGormRepository) CreateBulk(ctx context.Context, saleID string, items []model.SaleItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].SaleID = saleID
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	return nil
}

func (r *SaleItemGormRepository) ListBySaleID(ctx context.Context, saleID string) ([]model.SaleItem, error) {
	var items []model.SaleItem
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.SaleItem{}, err
	}
	return items, nil
}
