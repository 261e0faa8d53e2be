package database

import (
	"errors"
	"strings"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/gorm"
)

type ServiceRepo struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) *ServiceRepo {
	return &ServiceRepo{db}
}

// ServiceInput is the write payload for Create and Update
type ServiceInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (in ServiceInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(in.Description) == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	return nil
}

// FindAll returns services most recently created first
func (r *ServiceRepo) FindAll() ([]*models.Service, error) {
	var services []*models.Service
	if err := r.db.Order("created_at DESC").Find(&services).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "services", err)
	}
	return services, nil
}

// FindByID returns one service
func (r *ServiceRepo) FindByID(id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("service")
		}
		return nil, errs.NewDatabaseError("find", "service", err)
	}
	return &service, nil
}

// Create inserts a new service
func (r *ServiceRepo) Create(input ServiceInput) (*models.Service, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	service := models.Service{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := r.db.Create(&service).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "service", err)
	}
	return &service, nil
}

// Update rewrites an existing service
func (r *ServiceRepo) Update(id uint, input ServiceInput) (*models.Service, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	service, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	service.Title = input.Title
	service.Description = input.Description
	service.ImageURL = input.ImageURL
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := r.db.Save(service).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "service", err)
	}
	return service, nil
}

// Delete removes a service and returns its prior state
func (r *ServiceRepo) Delete(id uint) (*models.Service, error) {
	prior, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Service{}, id).Error; err != nil {
		return nil, errs.NewDatabaseError("delete", "service", err)
	}
	return prior, nil
}
