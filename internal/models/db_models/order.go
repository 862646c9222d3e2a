package db_models

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusPaid     OrderStatus = "paid"
	OrderStatusFailed   OrderStatus = "failed"
	OrderStatusRefunded OrderStatus = "refunded"
)

type PaymentType string

const (
	PaymentTypeFiat  PaymentType = "fiat"
	PaymentTypeToken PaymentType = "token"
)

type Order struct {
	BaseModel
	OrderNumber string      `gorm:"uniqueIndex;not null"`
	Amount      float64     `gorm:"not null"`
	TokenAmount *float64    // set only for token orders
	PaymentType PaymentType `gorm:"type:varchar(8);not null"`
	Status      OrderStatus `gorm:"type:varchar(16);default:'pending';index;not null"`
	Notes       string      `gorm:"type:text"`

	UserID   uuid.UUID `gorm:"type:uuid;index;not null"`
	PromptID uuid.UUID `gorm:"type:uuid;index;not null"`

	User    User     `gorm:"foreignKey:UserID"`
	Prompt  Prompt   `gorm:"foreignKey:PromptID"`
	Payment *Payment `gorm:"foreignKey:OrderID"`
}
