package models

import "time"

// Comment represents a reader comment on an article, held until approved
type Comment struct {
	ID         uint      `json:"id" db:"id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	ArticleID  uint      `json:"articleId" db:"article_id" gorm:"not null;index"`
	AuthorName string    `json:"authorName" db:"author_name" gorm:"type:varchar(255);not null"`
	Content    string    `json:"content" db:"content" gorm:"type:text;not null"`
	IsApproved bool      `json:"isApproved" db:"is_approved" gorm:"not null;default:false"`

	Article Article `json:"article,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}
