package models

import (
	"time"
)

// Article represents a news/blog article shown on the public site and
// managed from the admin dashboard
type Article struct {
	ID              uint            `json:"id" db:"id" gorm:"primaryKey"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`
	Title           string          `json:"title" db:"title" gorm:"type:text;not null"`
	Slug            string          `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description     string          `json:"description" db:"description" gorm:"type:text;not null"`
	Content         string          `json:"content" db:"content" gorm:"type:text;not null"`
	ImageURL        string          `json:"imageUrl" db:"image_url" gorm:"type:text;not null"`
	ThumbnailURL    *string         `json:"thumbnailUrl,omitempty" db:"thumbnail_url" gorm:"type:text"`
	Category        ArticleCategory `json:"category" db:"category" gorm:"type:varchar(50);not null;index"`
	IsFeatured      bool            `json:"isFeatured" db:"is_featured" gorm:"not null;default:false"`
	IsPublished     bool            `json:"isPublished" db:"is_published" gorm:"not null;default:false;index"`
	PublishedAt     *time.Time      `json:"publishedAt,omitempty" db:"published_at" gorm:"type:timestamp"`
	ReadTime        *string         `json:"readTime,omitempty" db:"read_time" gorm:"type:varchar(50)"`
	Author          *string         `json:"author,omitempty" db:"author" gorm:"type:varchar(255)"`
	AuthorImageURL  *string         `json:"authorImageUrl,omitempty" db:"author_image_url" gorm:"type:text"`
	MetaTitle       *string         `json:"metaTitle,omitempty" db:"meta_title" gorm:"type:varchar(255)"`
	MetaDescription *string         `json:"metaDescription,omitempty" db:"meta_description" gorm:"type:text"`

	Tags []Tag `json:"tags,omitempty" gorm:"many2many:article_tags"`
}
