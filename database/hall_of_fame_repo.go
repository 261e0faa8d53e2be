package database

import (
	"errors"
	"strings"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/gorm"
)

type HallOfFameRepo struct {
	db *gorm.DB
}

func NewHallOfFameRepo(db *gorm.DB) *HallOfFameRepo {
	return &HallOfFameRepo{db}
}

// HallOfFameInput is the write payload for Create and Update
type HallOfFameInput struct {
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

func (in HallOfFameInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if strings.TrimSpace(in.Role) == "" {
		return errs.NewMissingRequiredFieldError("role")
	}
	return nil
}

// FindAll returns all hall-of-fame entries
func (r *HallOfFameRepo) FindAll() ([]*models.HallOfFame, error) {
	var entries []*models.HallOfFame
	if err := r.db.Find(&entries).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "hall of fame entries", err)
	}
	return entries, nil
}

// FindByID returns one hall-of-fame entry
func (r *HallOfFameRepo) FindByID(id uint) (*models.HallOfFame, error) {
	var entry models.HallOfFame
	if err := r.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("hall of fame entry")
		}
		return nil, errs.NewDatabaseError("find", "hall of fame entry", err)
	}
	return &entry, nil
}

// Create inserts a new hall-of-fame entry
func (r *HallOfFameRepo) Create(input HallOfFameInput) (*models.HallOfFame, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	entry := models.HallOfFame{Name: input.Name, Role: input.Role, ImageURL: input.ImageURL}
	if err := r.db.Create(&entry).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "hall of fame entry", err)
	}
	return &entry, nil
}

// Update rewrites an existing hall-of-fame entry
func (r *HallOfFameRepo) Update(id uint, input HallOfFameInput) (*models.HallOfFame, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	entry, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	entry.Name = input.Name
	entry.Role = input.Role
	entry.ImageURL = input.ImageURL

	if err := r.db.Save(entry).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "hall of fame entry", err)
	}
	return entry, nil
}

// Delete removes a hall-of-fame entry and returns its prior state
func (r *HallOfFameRepo) Delete(id uint) (*models.HallOfFame, error) {
	prior, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.HallOfFame{}, id).Error; err != nil {
		return nil, errs.NewDatabaseError("delete", "hall of fame entry", err)
	}
	return prior, nil
}
