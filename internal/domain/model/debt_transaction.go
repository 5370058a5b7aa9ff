package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DebtTransactionType string

const (
	//掛け売りによる債務の発生
	DebtTransactionDebt DebtTransactionType = "DEBT"
	//返済
	DebtTransactionRepayment DebtTransactionType = "REPAYMENT"
)

// 債務台帳の明細。追記専用で、作成後の変更・削除はしない。
type DebtTransaction struct {
	ID         string              `gorm:"type:varchar(48);primaryKey" json:"id"`
	CustomerID string              `gorm:"type:varchar(48);not null;index" json:"customer_id"`
	Type       DebtTransactionType `gorm:"type:varchar(16);not null" json:"type"`
	Amount     decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"amount"`
	Note       string              `gorm:"type:varchar(255)" json:"note,omitempty"`
	// DEBT（掛け売り）の場合のみ、元になった売上を指す
	SaleID    *string   `gorm:"type:varchar(48);index" json:"sale_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
