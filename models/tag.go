package models

import "time"

// Tag represents a topic label attached to articles
type Tag struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	Name      string    `json:"name" db:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:varchar(100);not null;uniqueIndex"`

	Articles []Article `json:"articles,omitempty" gorm:"many2many:article_tags"`
}

// ArticleTag is the join row between an article and a tag. The pair is the
// primary key, so an article cannot carry the same tag twice.
type ArticleTag struct {
	ArticleID uint `json:"article_id" db:"article_id" gorm:"primaryKey"`
	TagID     uint `json:"tag_id" db:"tag_id" gorm:"primaryKey"`

	Article Article `json:"article,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Tag     Tag     `json:"tag,omitempty" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}
