package database

import (
	"errors"
	"strings"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubscriberRepo struct {
	db *gorm.DB
}

func NewSubscriberRepo(db *gorm.DB) *SubscriberRepo {
	return &SubscriberRepo{db}
}

// SubscriberFilter narrows FindAll
type SubscriberFilter struct {
	Active *bool
	Search string
	Limit  int
	Offset int
}

// SubscriberInput is the write payload for Create and Update
type SubscriberInput struct {
	Email       string         `json:"email"`
	Name        *string        `json:"name,omitempty"`
	IsActive    *bool          `json:"isActive,omitempty"`
	Preferences datatypes.JSON `json:"preferences,omitempty"`
}

// FindAll returns subscribers most recently subscribed first
func (r *SubscriberRepo) FindAll(filter SubscriberFilter) ([]*models.Subscriber, error) {
	query := r.db.Order("subscribed_at DESC")
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", term, term)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var subscribers []*models.Subscriber
	if err := query.Find(&subscribers).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "subscribers", err)
	}
	return subscribers, nil
}

// FindByID returns one subscriber
func (r *SubscriberRepo) FindByID(id uint) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	if err := r.db.First(&subscriber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("subscriber")
		}
		return nil, errs.NewDatabaseError("find", "subscriber", err)
	}
	return &subscriber, nil
}

// Create inserts a subscription after checking the email is not taken
func (r *SubscriberRepo) Create(input SubscriberInput) (*models.Subscriber, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, errs.NewMissingRequiredFieldError("email")
	}

	subscriber := models.Subscriber{
		Email:       input.Email,
		Name:        input.Name,
		IsActive:    true,
		Preferences: input.Preferences,
	}
	if input.IsActive != nil {
		subscriber.IsActive = *input.IsActive
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := emailTaken(tx, input.Email, 0); err != nil {
			return err
		}
		if err := tx.Create(&subscriber).Error; err != nil {
			return errs.NewDatabaseError("create", "subscriber", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// Update rewrites a subscription; the email check excludes the row itself
func (r *SubscriberRepo) Update(id uint, input SubscriberInput) (*models.Subscriber, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, errs.NewMissingRequiredFieldError("email")
	}

	var subscriber models.Subscriber
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&subscriber, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("subscriber")
			}
			return errs.NewDatabaseError("find", "subscriber", err)
		}
		if err := emailTaken(tx, input.Email, id); err != nil {
			return err
		}

		subscriber.Email = input.Email
		subscriber.Name = input.Name
		subscriber.Preferences = input.Preferences
		if input.IsActive != nil {
			subscriber.IsActive = *input.IsActive
		}

		if err := tx.Save(&subscriber).Error; err != nil {
			return errs.NewDatabaseError("update", "subscriber", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// Delete removes a subscription and returns its prior state
func (r *SubscriberRepo) Delete(id uint) (*models.Subscriber, error) {
	prior, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Subscriber{}, id).Error; err != nil {
		return nil, errs.NewDatabaseError("delete", "subscriber", err)
	}
	return prior, nil
}

// Count returns the number of active subscribers
func (r *SubscriberRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Subscriber{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "subscribers", err)
	}
	return count, nil
}

func emailTaken(tx *gorm.DB, email string, excludeID uint) error {
	query := tx.Model(&models.Subscriber{}).Where("email = ?", email)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return errs.NewDatabaseError("check email of", "subscriber", err)
	}
	if count > 0 {
		return errs.NewUniqueConflict("subscriber", "email", email)
	}
	return nil
}
