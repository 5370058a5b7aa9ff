package repository

import (
	"context"
	"errors"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"gorm.io/gorm"
)

type SupplierGormRepository struct {
	db *gorm.DB
}

func NewSupplierGormRepository(db *gorm.DB) *SupplierGormRepository {
	return &SupplierGormRepository{db: db}
}

// 登録順
func (r *SupplierGormRepository) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).
		Order("created_at asc").Order("id asc").
		Find(&suppliers).Error
	if err != nil {
		return []model.Supplier{}, err
	}
	return suppliers, nil
}

func (r *SupplierGormRepository) FindByID(ctx context.Context, id string) (model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Supplier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) Update(ctx context.Context, s model.Supplier) error {
	res := r.db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"name":  s.Name,
		"phone": s.Phone,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SupplierGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Supplier{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
