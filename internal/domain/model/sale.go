package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentTypeCash   PaymentType = "CASH"
	PaymentTypeCard   PaymentType = "CARD"
	PaymentTypeCredit PaymentType = "CREDIT"
)

// 売上。作成後は不変（追記専用コレクション）。
type Sale struct {
	ID          string          `gorm:"type:varchar(48);primaryKey" json:"id"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentType PaymentType     `gorm:"type:varchar(16);not null;index" json:"payment_type"`
	// CREDIT のときだけ必須
	CustomerID *string   `gorm:"type:varchar(48);index" json:"customer_id,omitempty"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}
