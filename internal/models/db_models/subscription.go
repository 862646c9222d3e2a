package db_models

import "github.com/google/uuid"

type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "free"
	PlanBasic      SubscriptionPlan = "basic"
	PlanPro        SubscriptionPlan = "pro"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusCancelled SubscriptionStatus = "cancelled"
	SubStatusExpired   SubscriptionStatus = "expired"
	SubStatusPending   SubscriptionStatus = "pending"
)

// Subscription is carried in the schema for billing history; no workflow
// writes it yet.
type Subscription struct {
	BaseModel
	Plan      SubscriptionPlan   `gorm:"type:varchar(16);not null"`
	Status    SubscriptionStatus `gorm:"type:varchar(16);default:'pending';index;not null"`
	StartDate int64              `gorm:"not null"`
	EndDate   int64              `gorm:"not null"`
	Price     float64            `gorm:"not null"`
	AutoRenew bool               `gorm:"default:true"`

	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	User User `gorm:"foreignKey:UserID"`
}
