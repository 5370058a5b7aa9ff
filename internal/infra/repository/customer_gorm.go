package repository

import (
	"context"
	"errors"
	"strings"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// 残高が大きい順（債務画面の並びに合わせる）
func (r *CustomerGormRepository) List(ctx context.Context, q repo.CustomerListQuery) ([]model.Customer, error) {
	var customers []model.Customer

	tx := r.db.WithContext(ctx).Model(&model.Customer{})

	if strings.TrimSpace(q.Q) != "" {
		like := "%" + strings.TrimSpace(q.Q) + "%"
		tx = tx.Where("name ILIKE ? OR phone LIKE ?", like, like)
	}

	err := tx.Order("balance desc").Order("id asc").Find(&customers).Error
	if err != nil {
		return []model.Customer{}, err
	}
	return customers, nil
}

func (r *CustomerGormRepository) FindByID(ctx context.Context, id string) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// 名前・電話の更新。残高はここでは触らない。
func (r *CustomerGormRepository) Update(ctx context.Context, c model.Customer) error {
	res := r.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":  c.Name,
		"phone": c.Phone,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 残高へ差分を加算
func (r *CustomerGormRepository) AddToBalance(ctx context.Context, customerID string, delta decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ?", customerID).
		Update("balance", gorm.Expr("balance + ?", delta))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
