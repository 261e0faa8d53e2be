package models

import "time"

// Partner represents a partner organization shown on the partners section
type Partner struct {
	ID       uint    `json:"id" db:"id" gorm:"primaryKey"`
	Name     string  `json:"name" db:"name" gorm:"type:varchar(255);not null"`
	ImageURL *string `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
}

// HallOfFame represents a recognized contributor on the hall-of-fame page
type HallOfFame struct {
	ID       uint    `json:"id" db:"id" gorm:"primaryKey"`
	Name     string  `json:"name" db:"name" gorm:"type:varchar(255);not null"`
	Role     string  `json:"role" db:"role" gorm:"type:varchar(255);not null"`
	ImageURL *string `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
}

// SuccessStory represents a testimonial quote
type SuccessStory struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	Text      string    `json:"text" db:"text" gorm:"type:text;not null"`
	Author    string    `json:"author" db:"author" gorm:"type:varchar(255);not null"`
	Role      string    `json:"role" db:"role" gorm:"type:varchar(255);not null"`
}
