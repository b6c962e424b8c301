package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusActive  SubscriptionStatus = "active"
	SubStatusExpired SubscriptionStatus = "expired"
)

// Subscription links a user to a plan for a paid window. IsCurrent is
// maintained by deactivating prior rows before inserting a new one; the
// sequence is deliberately best-effort, not transactional.
type Subscription struct {
	BaseModel
	UserID uuid.UUID `gorm:"index"`
	PlanID uuid.UUID `gorm:"index"`

	PlanName   string
	PriceMinor int64
	Features   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	StartsAt int64 `gorm:"not null"`
	EndsAt   int64 `gorm:"not null"`

	PaymentID string             `gorm:"index"`
	Status    SubscriptionStatus `gorm:"type:text;default:active"`
	IsCurrent bool               `gorm:"index"`

	User User `gorm:"foreignKey:UserID"`
	Plan Plan `gorm:"foreignKey:PlanID"`
}

// SubscriptionHistory is an append-only record of every purchase, kept even
// after the subscription row itself is deactivated.
type SubscriptionHistory struct {
	BaseModel
	UserID     uuid.UUID `gorm:"index"`
	PlanID     uuid.UUID
	PlanName   string
	PriceMinor int64
	StartsAt   int64
	EndsAt     int64
}
