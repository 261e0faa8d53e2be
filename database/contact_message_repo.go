package database

import (
	"errors"
	"strings"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/gorm"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// ContactMessageInput is the write payload for Create
type ContactMessageInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
}

func (in ContactMessageInput) validate() error {
	for field, value := range map[string]string{
		"name":    in.Name,
		"email":   in.Email,
		"message": in.Message,
	} {
		if strings.TrimSpace(value) == "" {
			return errs.NewMissingRequiredFieldError(field)
		}
	}
	return nil
}

// FindAll returns messages newest first, optionally only unread ones
func (r *ContactMessageRepo) FindAll(unreadOnly bool) ([]*models.ContactMessage, error) {
	query := r.db.Order("created_at DESC")
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	var messages []*models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "contact messages", err)
	}
	return messages, nil
}

// FindByID returns one message
func (r *ContactMessageRepo) FindByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("contact message")
		}
		return nil, errs.NewDatabaseError("find", "contact message", err)
	}
	return &message, nil
}

// Create inserts an incoming message
func (r *ContactMessageRepo) Create(input ContactMessageInput) (*models.ContactMessage, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	message := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := r.db.Create(&message).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "contact message", err)
	}
	return &message, nil
}

// MarkRead marks a message as handled
func (r *ContactMessageRepo) MarkRead(id uint) (*models.ContactMessage, error) {
	message, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(message).Update("is_read", true).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "contact message", err)
	}
	return message, nil
}

// CountUnread returns the number of unread messages
func (r *ContactMessageRepo) CountUnread() (int64, error) {
	var count int64
	if err := r.db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "contact messages", err)
	}
	return count, nil
}

// Delete removes a message and returns its prior state
func (r *ContactMessageRepo) Delete(id uint) (*models.ContactMessage, error) {
	prior, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.ContactMessage{}, id).Error; err != nil {
		return nil, errs.NewDatabaseError("delete", "contact message", err)
	}
	return prior, nil
}
