package model

import "time"

// 在庫調整の履歴（入荷・棚卸しなど、販売以外の在庫変動）。
type InventoryAdjustment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID string    `gorm:"type:varchar(48);not null;index" json:"product_id"`
	Delta     int64     `gorm:"not null" json:"delta"`
	Reason    string    `gorm:"type:varchar(255);not null" json:"reason"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
