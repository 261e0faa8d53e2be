package database

import (
	"errors"
	"strings"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/gorm"
)

type MediaRepo struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) *MediaRepo {
	return &MediaRepo{db}
}

// MediaFilter narrows FindAll by type or owning entity
type MediaFilter struct {
	Type      string
	ArticleID *uint
	EventID   *uint
	Limit     int
	Offset    int
}

// MediaInput is the write payload for Create and Update
type MediaInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type"`
	URL         string  `json:"url"`
	ArticleID   *uint   `json:"articleId,omitempty"`
	EventID     *uint   `json:"eventId,omitempty"`
}

func (in MediaInput) validate() error {
	for field, value := range map[string]string{
		"title": in.Title,
		"type":  in.Type,
		"url":   in.URL,
	} {
		if strings.TrimSpace(value) == "" {
			return errs.NewMissingRequiredFieldError(field)
		}
	}
	return nil
}

// FindAll returns media items most recently created first
func (r *MediaRepo) FindAll(filter MediaFilter) ([]*models.Media, error) {
	query := r.db.Order("created_at DESC")
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.ArticleID != nil {
		query = query.Where("article_id = ?", *filter.ArticleID)
	}
	if filter.EventID != nil {
		query = query.Where("event_id = ?", *filter.EventID)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []*models.Media
	if err := query.Find(&items).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "media items", err)
	}
	return items, nil
}

// FindByID returns one media item
func (r *MediaRepo) FindByID(id uint) (*models.Media, error) {
	var item models.Media
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("media item")
		}
		return nil, errs.NewDatabaseError("find", "media item", err)
	}
	return &item, nil
}

// Create inserts a new media item
func (r *MediaRepo) Create(input MediaInput) (*models.Media, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item := models.Media{
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		URL:         input.URL,
		ArticleID:   input.ArticleID,
		EventID:     input.EventID,
	}
	if err := r.db.Create(&item).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "media item", err)
	}
	return &item, nil
}

// Update rewrites an existing media item
func (r *MediaRepo) Update(id uint, input MediaInput) (*models.Media, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	item.Title = input.Title
	item.Description = input.Description
	item.Type = input.Type
	item.URL = input.URL
	item.ArticleID = input.ArticleID
	item.EventID = input.EventID

	if err := r.db.Save(item).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "media item", err)
	}
	return item, nil
}

// Delete removes a media item and returns its prior state
func (r *MediaRepo) Delete(id uint) (*models.Media, error) {
	prior, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Media{}, id).Error; err != nil {
		return nil, errs.NewDatabaseError("delete", "media item", err)
	}
	return prior, nil
}
