package database

import (
	"errors"
	"strings"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *TagRepo) GetDB() *gorm.DB {
	return r.db
}

// TagInput is the write payload for Create and Update
type TagInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (in TagInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if strings.TrimSpace(in.Slug) == "" {
		return errs.NewMissingRequiredFieldError("slug")
	}
	return nil
}

// FindAll returns all tags ordered by name
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	if err := r.db.Order("name").Find(&tags).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "tags", err)
	}
	return tags, nil
}

// FindByID returns one tag
func (r *TagRepo) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("tag")
		}
		return nil, errs.NewDatabaseError("find", "tag", err)
	}
	return &tag, nil
}

// ForArticle resolves the article's tags through the association table,
// ordered by tag name
func (r *TagRepo) ForArticle(articleID uint) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id = ?", articleID).
		Order("tags.name").
		Find(&tags).Error
	if err != nil {
		return nil, errs.NewDatabaseError("resolve tags of", "article", err)
	}
	return tags, nil
}

// Create inserts a tag after checking both name and slug are free
func (r *TagRepo) Create(input TagInput) (*models.Tag, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	tag := models.Tag{Name: input.Name, Slug: input.Slug}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := slugTaken(tx, &models.Tag{}, input.Slug, 0); err != nil {
			return err
		}
		if err := nameTaken(tx, input.Name, 0); err != nil {
			return err
		}
		if err := tx.Create(&tag).Error; err != nil {
			return errs.NewDatabaseError("create", "tag", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Update renames a tag; name and slug checks exclude the row itself
func (r *TagRepo) Update(id uint, input TagInput) (*models.Tag, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var tag models.Tag
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("tag")
			}
			return errs.NewDatabaseError("find", "tag", err)
		}
		if err := slugTaken(tx, &models.Tag{}, input.Slug, id); err != nil {
			return err
		}
		if err := nameTaken(tx, input.Name, id); err != nil {
			return err
		}
		tag.Name = input.Name
		tag.Slug = input.Slug
		if err := tx.Save(&tag).Error; err != nil {
			return errs.NewDatabaseError("update", "tag", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Delete removes the tag's article associations before the tag row so no
// orphaned association is left behind
func (r *TagRepo) Delete(id uint) (*models.Tag, error) {
	prior, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
			return errs.NewDatabaseError("delete associations of", "tag", err)
		}
		if err := tx.Delete(&models.Tag{}, id).Error; err != nil {
			return errs.NewDatabaseError("delete", "tag", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prior, nil
}

func nameTaken(tx *gorm.DB, name string, excludeID uint) error {
	query := tx.Model(&models.Tag{}).Where("name = ?", name)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return errs.NewDatabaseError("check name of", "tag", err)
	}
	if count > 0 {
		return errs.NewUniqueConflict("tag", "name", name)
	}
	return nil
}
