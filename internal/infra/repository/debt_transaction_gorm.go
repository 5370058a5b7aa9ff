package repository

import (
	"context"

	"pos/internal/domain/model"

	"gorm.io/gorm"
)

type DebtTransactionGormRepository struct {
	db *gorm.DB
}

func NewDebtTransactionGormRepository(db *gorm.DB) *DebtTransactionGormRepository {
	return &DebtTransactionGormRepository{db: db}
}

func (r *DebtTransactionGormRepository) Create(ctx context.Context, t model.DebtTransaction) error {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return err
	}
	return nil
}

// 新しい順
func (r *DebtTransactionGormRepository) ListByCustomerID(ctx context.Context, customerID string) ([]model.DebtTransaction, error) {
	var txs []model.DebtTransaction
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at desc").Order("id desc").
		Find(&txs).Error
	if err != nil {
		return []model.DebtTransaction{}, err
	}
	return txs, nil
}
