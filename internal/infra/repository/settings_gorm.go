package repository

import (
	"context"
	"errors"

	"pos/internal/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 設定行の固定ID（常に1行だけ）
const settingsRowID int64 = 1

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

// 無ければデフォルト値を返す（エラーにしない）
func (r *SettingsGormRepository) Get(ctx context.Context) (model.StoreSettings, error) {
	var s model.StoreSettings
	err := r.db.WithContext(ctx).First(&s, "id = ?", settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.StoreSettings{
			ID:      settingsRowID,
			Name:    "My Store",
			TaxRate: decimal.Zero,
		}, nil
	}
	if err != nil {
		return model.StoreSettings{}, err
	}
	return s, nil
}

func (r *SettingsGormRepository) Save(ctx context.Context, s model.StoreSettings) error {
	s.ID = settingsRowID
	if err := r.db.WithContext(ctx).Save(&s).Error; err != nil {
		return err
	}
	return nil
}
