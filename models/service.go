package models

import "time"

// Service represents a service offering shown on the services page
type Service struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	Title       string    `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	IsActive    bool      `json:"isActive" db:"is_active" gorm:"not null;default:true"`
}
