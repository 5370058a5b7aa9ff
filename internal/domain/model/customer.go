package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 掛け（ツケ）客。
// Balance が正で「客がこちらに借りている」状態。
// Balance == Σ(DEBT) − Σ(REPAYMENT) を常に維持する。
// 履歴から再計算はせず、取引追加と同一トランザクションで更新する。
type Customer struct {
	ID        string          `gorm:"type:varchar(48);primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string          `gorm:"type:varchar(32)" json:"phone"`
	Balance   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"balance"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
