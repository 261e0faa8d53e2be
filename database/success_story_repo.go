package database

import (
	"errors"
	"strings"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/gorm"
)

type SuccessStoryRepo struct {
	db *gorm.DB
}

func NewSuccessStoryRepo(db *gorm.DB) *SuccessStoryRepo {
	return &SuccessStoryRepo{db}
}

// SuccessStoryInput is the write payload for Create and Update
type SuccessStoryInput struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

func (in SuccessStoryInput) validate() error {
	for field, value := range map[string]string{
		"text":   in.Text,
		"author": in.Author,
		"role":   in.Role,
	} {
		if strings.TrimSpace(value) == "" {
			return errs.NewMissingRequiredFieldError(field)
		}
	}
	return nil
}

// FindAll returns stories oldest first, matching the public page order
func (r *SuccessStoryRepo) FindAll() ([]*models.SuccessStory, error) {
	var stories []*models.SuccessStory
	if err := r.db.Order("created_at").Find(&stories).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "success stories", err)
	}
	return stories, nil
}

// FindByID returns one story
func (r *SuccessStoryRepo) FindByID(id uint) (*models.SuccessStory, error) {
	var story models.SuccessStory
	if err := r.db.First(&story, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("success story")
		}
		return nil, errs.NewDatabaseError("find", "success story", err)
	}
	return &story, nil
}

// Create inserts a new story
func (r *SuccessStoryRepo) Create(input SuccessStoryInput) (*models.SuccessStory, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	story := models.SuccessStory{Text: input.Text, Author: input.Author, Role: input.Role}
	if err := r.db.Create(&story).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "success story", err)
	}
	return &story, nil
}

// Update rewrites an existing story
func (r *SuccessStoryRepo) Update(id uint, input SuccessStoryInput) (*models.SuccessStory, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	story, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	story.Text = input.Text
	story.Author = input.Author
	story.Role = input.Role

	if err := r.db.Save(story).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "success story", err)
	}
	return story, nil
}

// Delete removes a story and returns its prior state
func (r *SuccessStoryRepo) Delete(id uint) (*models.SuccessStory, error) {
	prior, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.SuccessStory{}, id).Error; err != nil {
		return nil, errs.NewDatabaseError("delete", "success story", err)
	}
	return prior, nil
}
