package database

import (
	"errors"
	"strings"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/gorm"
)

type JobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *JobRepo {
	return &JobRepo{db}
}

// JobInput is the write payload for Create and Update. IsActive defaults
// to true when omitted.
type JobInput struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Requirements *string `json:"requirements,omitempty"`
	Location     *string `json:"location,omitempty"`
	Type         *string `json:"type,omitempty"`
	Salary       *string `json:"salary,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

func (in JobInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(in.Description) == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	return nil
}

// FindAll returns jobs most recently posted first, optionally only active ones
func (r *JobRepo) FindAll(active *bool) ([]*models.Job, error) {
	query := r.db.Order("posted_at DESC")
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}
	var jobs []*models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "jobs", err)
	}
	return jobs, nil
}

// FindByID returns one job
func (r *JobRepo) FindByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := r.db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("job")
		}
		return nil, errs.NewDatabaseError("find", "job", err)
	}
	return &job, nil
}

// Create inserts a new job posting
func (r *JobRepo) Create(input JobInput) (*models.Job, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	job := models.Job{
		Title:        input.Title,
		Description:  input.Description,
		Requirements: input.Requirements,
		Location:     input.Location,
		Type:         input.Type,
		Salary:       input.Salary,
		IsActive:     true,
	}
	if input.IsActive != nil {
		job.IsActive = *input.IsActive
	}

	if err := r.db.Create(&job).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "job", err)
	}
	return &job, nil
}

// Update rewrites an existing job posting
func (r *JobRepo) Update(id uint, input JobInput) (*models.Job, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	job, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	job.Title = input.Title
	job.Description = input.Description
	job.Requirements = input.Requirements
	job.Location = input.Location
	job.Type = input.Type
	job.Salary = input.Salary
	if input.IsActive != nil {
		job.IsActive = *input.IsActive
	}

	if err := r.db.Save(job).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "job", err)
	}
	return job, nil
}

// Delete removes a job and returns its prior state
func (r *JobRepo) Delete(id uint) (*models.Job, error) {
	prior, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Job{}, id).Error; err != nil {
		return nil, errs.NewDatabaseError("delete", "job", err)
	}
	return prior, nil
}

// Count returns the total number of jobs
func (r *JobRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "jobs", err)
	}
	return count, nil
}
