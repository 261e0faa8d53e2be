package database

import (
	"errors"
	"strings"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/gorm"
)

type PartnerRepo struct {
	db *gorm.DB
}

func NewPartnerRepo(db *gorm.DB) *PartnerRepo {
	return &PartnerRepo{db}
}

// PartnerInput is the write payload for Create and Update
type PartnerInput struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// FindAll returns all partners
func (r *PartnerRepo) FindAll() ([]*models.Partner, error) {
	var partners []*models.Partner
	if err := r.db.Find(&partners).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "partners", err)
	}
	return partners, nil
}

// FindByID returns one partner
func (r *PartnerRepo) FindByID(id uint) (*models.Partner, error) {
	var partner models.Partner
	if err := r.db.First(&partner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("partner")
		}
		return nil, errs.NewDatabaseError("find", "partner", err)
	}
	return &partner, nil
}

// Create inserts a new partner
func (r *PartnerRepo) Create(input PartnerInput) (*models.Partner, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errs.NewMissingRequiredFieldError("name")
	}

	partner := models.Partner{Name: input.Name, ImageURL: input.ImageURL}
	if err := r.db.Create(&partner).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "partner", err)
	}
	return &partner, nil
}

// Update rewrites an existing partner
func (r *PartnerRepo) Update(id uint, input PartnerInput) (*models.Partner, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errs.NewMissingRequiredFieldError("name")
	}

	partner, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	partner.Name = input.Name
	partner.ImageURL = input.ImageURL

	if err := r.db.Save(partner).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "partner", err)
	}
	return partner, nil
}

// Delete removes a partner and returns its prior state
func (r *PartnerRepo) Delete(id uint) (*models.Partner, error) {
	prior, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Partner{}, id).Error; err != nil {
		return nil, errs.NewDatabaseError("delete", "partner", err)
	}
	return prior, nil
}
