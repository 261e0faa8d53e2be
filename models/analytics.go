package models

import "time"

// Analytics holds aggregate counters for one article or one event
type Analytics struct {
	ID            uint      `json:"id" db:"id" gorm:"primaryKey"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`
	ArticleID     *uint     `json:"articleId,omitempty" db:"article_id"`
	EventID       *uint     `json:"eventId,omitempty" db:"event_id"`
	Views         int       `json:"views" db:"views" gorm:"not null;default:0"`
	Shares        int       `json:"shares" db:"shares" gorm:"not null;default:0"`
	Likes         int       `json:"likes" db:"likes" gorm:"not null;default:0"`
	Registrations int       `json:"registrations" db:"registrations" gorm:"not null;default:0"`

	Article *Article `json:"article,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:SET NULL"`
	Event   *Event   `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:SET NULL"`
}
