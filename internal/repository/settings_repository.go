package repository

import (
	"context"

	"pos/internal/domain/model"
)

// 店舗設定は1行だけ。無ければ Get はデフォルト値を返す。
type SettingsRepository interface {
	Get(ctx context.Context) (model.StoreSettings, error)
	Save(ctx context.Context, s model.StoreSettings) error
}
