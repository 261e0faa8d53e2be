package database

import (
	"errors"
	"strings"
	"time"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *EventRepo) GetDB() *gorm.DB {
	return r.db
}

// EventFilter narrows FindAll. Future and Past partition on the start
// date relative to now.
type EventFilter struct {
	EventType *models.EventType
	Featured  *bool
	Published *bool
	Future    bool
	Past      bool
	Search    string
	Limit     int
	Offset    int
}

// EventInput is the write payload for Create and Update
type EventInput struct {
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	Description     string         `json:"description"`
	Content         *string        `json:"content,omitempty"`
	ImageURL        *string        `json:"imageUrl,omitempty"`
	StartDate       time.Time      `json:"startDate"`
	EndDate         *time.Time     `json:"endDate,omitempty"`
	EventType       string         `json:"eventType"`
	Location        *string        `json:"location,omitempty"`
	Venue           *string        `json:"venue,omitempty"`
	IsVirtual       bool           `json:"isVirtual"`
	RegistrationURL *string        `json:"registrationUrl,omitempty"`
	Speakers        datatypes.JSON `json:"speakers,omitempty"`
	IsFeatured      bool           `json:"isFeatured"`
	IsPublished     bool           `json:"isPublished"`
}

func (in EventInput) validate() (models.EventType, error) {
	for field, value := range map[string]string{
		"title":       in.Title,
		"slug":        in.Slug,
		"description": in.Description,
		"eventType":   in.EventType,
	} {
		if strings.TrimSpace(value) == "" {
			return "", errs.NewMissingRequiredFieldError(field)
		}
	}
	if in.StartDate.IsZero() {
		return "", errs.NewMissingRequiredFieldError("startDate")
	}
	return models.ParseEventType(in.EventType)
}

// FindAll returns events matching the filter, most recent start date first
func (r *EventRepo) FindAll(filter EventFilter) ([]*models.Event, error) {
	query := r.db.Model(&models.Event{}).Order("start_date DESC")

	if filter.EventType != nil {
		query = query.Where("event_type = ?", *filter.EventType)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Published != nil {
		query = query.Where("is_published = ?", *filter.Published)
	}
	if filter.Future {
		query = query.Where("start_date > ?", time.Now())
	}
	if filter.Past {
		query = query.Where("start_date < ?", time.Now())
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var events []*models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "events", err)
	}
	return events, nil
}

// FindByID returns one event
func (r *EventRepo) FindByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("event")
		}
		return nil, errs.NewDatabaseError("find", "event", err)
	}
	return &event, nil
}

// FindBySlug returns one event
func (r *EventRepo) FindBySlug(slug string) (*models.Event, error) {
	var event models.Event
	if err := r.db.Where("slug = ?", slug).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("event")
		}
		return nil, errs.NewDatabaseError("find", "event", err)
	}
	return &event, nil
}

// Create validates the payload, enforces slug uniqueness and inserts the
// event. A slug conflict prevents the row write entirely.
func (r *EventRepo) Create(input EventInput) (*models.Event, error) {
	eventType, err := input.validate()
	if err != nil {
		return nil, err
	}

	event := models.Event{
		Title:           input.Title,
		Slug:            input.Slug,
		Description:     input.Description,
		Content:         input.Content,
		ImageURL:        input.ImageURL,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		EventType:       eventType,
		Location:        input.Location,
		Venue:           input.Venue,
		IsVirtual:       input.IsVirtual,
		RegistrationURL: input.RegistrationURL,
		Speakers:        input.Speakers,
		IsFeatured:      input.IsFeatured,
		IsPublished:     input.IsPublished,
	}
	if input.IsPublished {
		now := time.Now()
		event.PublishedAt = &now
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := slugTaken(tx, &models.Event{}, input.Slug, 0); err != nil {
			return err
		}
		if err := tx.Create(&event).Error; err != nil {
			return errs.NewDatabaseError("create", "event", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update validates the payload, re-checks slug uniqueness excluding this
// row, and applies the same publish-timestamp rule as articles
func (r *EventRepo) Update(id uint, input EventInput) (*models.Event, error) {
	eventType, err := input.validate()
	if err != nil {
		return nil, err
	}

	var event models.Event
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("event")
			}
			return errs.NewDatabaseError("find", "event", err)
		}

		if err := slugTaken(tx, &models.Event{}, input.Slug, id); err != nil {
			return err
		}

		event.Title = input.Title
		event.Slug = input.Slug
		event.Description = input.Description
		event.Content = input.Content
		event.ImageURL = input.ImageURL
		event.StartDate = input.StartDate
		event.EndDate = input.EndDate
		event.EventType = eventType
		event.Location = input.Location
		event.Venue = input.Venue
		event.IsVirtual = input.IsVirtual
		event.RegistrationURL = input.RegistrationURL
		event.Speakers = input.Speakers
		event.IsFeatured = input.IsFeatured
		event.PublishedAt = nextPublishedAt(event.PublishedAt, input.IsPublished)
		event.IsPublished = input.IsPublished

		if err := tx.Save(&event).Error; err != nil {
			return errs.NewDatabaseError("update", "event", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Delete removes the event and returns its prior state
func (r *EventRepo) Delete(id uint) (*models.Event, error) {
	prior, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Event{}, id).Error; err != nil {
		return nil, errs.NewDatabaseError("delete", "event", err)
	}
	return prior, nil
}

// SetFeatured flips the featured flag without requiring the full payload
func (r *EventRepo) SetFeatured(id uint, featured bool) (*models.Event, error) {
	event, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(event).Update("is_featured", featured).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "event", err)
	}
	return r.FindByID(id)
}

// SetPublished flips the publish flag, managing the publish timestamp by
// the same rule as Update
func (r *EventRepo) SetPublished(id uint, published bool) (*models.Event, error) {
	event, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"is_published": published,
		"published_at": nextPublishedAt(event.PublishedAt, published),
	}
	if err := r.db.Model(event).Updates(updates).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "event", err)
	}
	return r.FindByID(id)
}

// Count returns the total number of events
func (r *EventRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Event{}).Count(&count).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "events", err)
	}
	return count, nil
}
