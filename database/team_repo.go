package database

import (
	"errors"
	"strings"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/gorm"
)

type TeamRepo struct {
	db *gorm.DB
}

func NewTeamRepo(db *gorm.DB) *TeamRepo {
	return &TeamRepo{db}
}

// TeamMemberInput is the write payload for Create and Update
type TeamMemberInput struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Bio         string  `json:"bio"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

func (in TeamMemberInput) validate() error {
	for field, value := range map[string]string{
		"name":        in.Name,
		"role":        in.Role,
		"bio":         in.Bio,
		"description": in.Description,
	} {
		if strings.TrimSpace(value) == "" {
			return errs.NewMissingRequiredFieldError(field)
		}
	}
	return nil
}

// FindAll returns all team members
func (r *TeamRepo) FindAll() ([]*models.TeamMember, error) {
	var members []*models.TeamMember
	if err := r.db.Find(&members).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "team members", err)
	}
	return members, nil
}

// FindByID returns one team member
func (r *TeamRepo) FindByID(id uint) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("team member")
		}
		return nil, errs.NewDatabaseError("find", "team member", err)
	}
	return &member, nil
}

// Create inserts a new team member
func (r *TeamRepo) Create(input TeamMemberInput) (*models.TeamMember, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	member := models.TeamMember{
		Name:        input.Name,
		Role:        input.Role,
		Bio:         input.Bio,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if err := r.db.Create(&member).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "team member", err)
	}
	return &member, nil
}

// Update rewrites an existing team member
func (r *TeamRepo) Update(id uint, input TeamMemberInput) (*models.TeamMember, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	member, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	member.Name = input.Name
	member.Role = input.Role
	member.Bio = input.Bio
	member.Description = input.Description
	member.ImageURL = input.ImageURL

	if err := r.db.Save(member).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "team member", err)
	}
	return member, nil
}

// Delete removes a team member and returns their prior state
func (r *TeamRepo) Delete(id uint) (*models.TeamMember, error) {
	prior, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.TeamMember{}, id).Error; err != nil {
		return nil, errs.NewDatabaseError("delete", "team member", err)
	}
	return prior, nil
}
