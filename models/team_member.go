package models

// TeamMember represents a staff member shown on the team page
type TeamMember struct {
	ID          uint    `json:"id" db:"id" gorm:"primaryKey"`
	Name        string  `json:"name" db:"name" gorm:"type:varchar(255);not null"`
	Role        string  `json:"role" db:"role" gorm:"type:varchar(255);not null"`
	Bio         string  `json:"bio" db:"bio" gorm:"type:text;not null"`
	Description string  `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    *string `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
}
