package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 売上明細。
// 商品名・単価は販売時点のスナップショットを保存する。
// 後から商品の価格が変わっても過去の売上は変わらない。
// 原価はスナップショットしない（現行仕様どおり）。
type SaleItem struct {
	ID                  int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	SaleID              string          `gorm:"type:varchar(48);not null;index" json:"sale_id"`
	ProductID           string          `gorm:"type:varchar(48);not null;index" json:"product_id"`
	ProductNameSnapshot string          `gorm:"type:varchar(255);not null" json:"product_name_snapshot"`
	UnitPriceSnapshot   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price_snapshot"`
	Quantity            int64           `gorm:"not null" json:"quantity"`
	CreatedAt           time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
