package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 商品。在庫の増減は販売（checkout）か在庫調整のみ。
type Product struct {
	ID                string          `gorm:"type:varchar(48);primaryKey" json:"id"`
	Barcode           string          `gorm:"type:varchar(64);index" json:"barcode,omitempty"`
	Name              string          `gorm:"type:varchar(255);not null" json:"name"`
	Price             decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Cost              decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cost"`
	Stock             int64           `gorm:"not null" json:"stock"`
	LowStockThreshold int64           `gorm:"not null;default:0" json:"low_stock_threshold"`
	SupplierID        *string         `gorm:"type:varchar(48);index" json:"supplier_id,omitempty"`
	ImageURL          string          `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt         time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
	// 過去の売上明細が参照を保てるようにソフトデリート
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
