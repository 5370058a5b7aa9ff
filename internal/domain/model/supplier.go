package model

import "time"

// 仕入先。商品からの任意参照のみで、台帳の不変条件には関与しない。
type Supplier struct {
	ID        string    `gorm:"type:varchar(48);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(32)" json:"phone"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
