package models

import "time"

// Media represents a hosted media asset, optionally owned by an article
// or an event. Owner links are severed, not cascaded, when the owner goes.
type Media struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime;index"`
	Title       string    `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	Type        string    `json:"type" db:"type" gorm:"type:varchar(50);not null;index"`
	URL         string    `json:"url" db:"url" gorm:"type:text;not null"`
	ArticleID   *uint     `json:"articleId,omitempty" db:"article_id"`
	EventID     *uint     `json:"eventId,omitempty" db:"event_id"`

	Article *Article `json:"article,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:SET NULL"`
	Event   *Event   `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:SET NULL"`
}
