package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 店舗設定（1行だけ持つ）。レシート表示などUI側が使う。
type StoreSettings struct {
	ID         int64           `gorm:"primaryKey" json:"-"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Address    string          `gorm:"type:varchar(255)" json:"address"`
	Phone      string          `gorm:"type:varchar(32)" json:"phone"`
	VATNumber  string          `gorm:"type:varchar(64)" json:"vat_number,omitempty"`
	TaxRate    decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"tax_rate"`
	FooterText string          `gorm:"type:varchar(255)" json:"footer_text,omitempty"`
	AutoPrint  bool            `gorm:"not null;default:false" json:"auto_print"`
	UpdatedAt  time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
