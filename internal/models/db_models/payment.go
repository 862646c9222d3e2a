package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentMethod string

const (
	MethodMomo    PaymentMethod = "momo"
	MethodZaloPay PaymentMethod = "zalopay"
	MethodVNPay   PaymentMethod = "vnpay"
	MethodStripe  PaymentMethod = "stripe"
	MethodToken   PaymentMethod = "token"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// IsTerminal reports whether a payment status may no longer change to a
// different status. Re-applying the same terminal status stays legal.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

type Payment struct {
	BaseModel
	TransactionID  string         `gorm:"uniqueIndex;not null"`
	Amount         float64        `gorm:"not null"`
	Method         PaymentMethod  `gorm:"type:varchar(16);not null"`
	Status         PaymentStatus  `gorm:"type:varchar(16);default:'pending';index;not null"`
	PaymentDetails datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	// Populated only when Method == token.
	TokenAmount   *float64
	WalletAddress string `gorm:"index"`
	ChainTxID     string `gorm:"index"`

	OrderID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	Order Order `gorm:"foreignKey:OrderID"`
}
