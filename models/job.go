package models

import "time"

// Job represents an open position listed on the careers page
type Job struct {
	ID           uint      `json:"id" db:"id" gorm:"primaryKey"`
	Title        string    `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null"`
	Requirements *string   `json:"requirements,omitempty" db:"requirements" gorm:"type:text"`
	Location     *string   `json:"location,omitempty" db:"location" gorm:"type:varchar(255)"`
	Type         *string   `json:"type,omitempty" db:"type" gorm:"type:varchar(100)"`
	Salary       *string   `json:"salary,omitempty" db:"salary" gorm:"type:varchar(100)"`
	PostedAt     time.Time `json:"postedAt" db:"posted_at" gorm:"not null;autoCreateTime;index"`
	IsActive     bool      `json:"isActive" db:"is_active" gorm:"not null;default:true"`
}
