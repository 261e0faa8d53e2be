package models

import (
	"time"

	"gorm.io/datatypes"
)

// Subscriber represents a newsletter subscription
type Subscriber struct {
	ID           uint           `json:"id" db:"id" gorm:"primaryKey"`
	Email        string         `json:"email" db:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         *string        `json:"name,omitempty" db:"name" gorm:"type:varchar(255)"`
	IsActive     bool           `json:"isActive" db:"is_active" gorm:"not null;default:true"`
	Preferences  datatypes.JSON `json:"preferences,omitempty" db:"preferences"`
	SubscribedAt time.Time      `json:"subscribedAt" db:"subscribed_at" gorm:"not null;autoCreateTime;index"`
}
