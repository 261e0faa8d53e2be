package models

import "time"

// ContactMessage represents a message sent through the public contact form
type ContactMessage struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime;index"`
	Name      string    `json:"name" db:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" db:"email" gorm:"type:varchar(255);not null"`
	Subject   *string   `json:"subject,omitempty" db:"subject" gorm:"type:varchar(255)"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	IsRead    bool      `json:"isRead" db:"is_read" gorm:"not null;default:false"`
}
