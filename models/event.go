package models

import (
	"time"

	"gorm.io/datatypes"
)

// Event represents a webinar, conference or other organization event
type Event struct {
	ID              uint           `json:"id" db:"id" gorm:"primaryKey"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`
	Title           string         `json:"title" db:"title" gorm:"type:text;not null"`
	Slug            string         `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description     string         `json:"description" db:"description" gorm:"type:text;not null"`
	Content         *string        `json:"content,omitempty" db:"content" gorm:"type:text"`
	ImageURL        *string        `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	StartDate       time.Time      `json:"startDate" db:"start_date" gorm:"type:timestamp;not null;index"`
	EndDate         *time.Time     `json:"endDate,omitempty" db:"end_date" gorm:"type:timestamp"`
	EventType       EventType      `json:"eventType" db:"event_type" gorm:"type:varchar(50);not null;index"`
	Location        *string        `json:"location,omitempty" db:"location" gorm:"type:varchar(255)"`
	Venue           *string        `json:"venue,omitempty" db:"venue" gorm:"type:varchar(255)"`
	IsVirtual       bool           `json:"isVirtual" db:"is_virtual" gorm:"not null;default:false"`
	RegistrationURL *string        `json:"registrationUrl,omitempty" db:"registration_url" gorm:"type:text"`
	Speakers        datatypes.JSON `json:"speakers,omitempty" db:"speakers"`
	IsFeatured      bool           `json:"isFeatured" db:"is_featured" gorm:"not null;default:false"`
	IsPublished     bool           `json:"isPublished" db:"is_published" gorm:"not null;default:false;index"`
	PublishedAt     *time.Time     `json:"publishedAt,omitempty" db:"published_at" gorm:"type:timestamp"`
}
