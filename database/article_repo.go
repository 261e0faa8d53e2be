package database

import (
	"errors"
	"strings"
	"time"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/gorm"
)

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ArticleRepo) GetDB() *gorm.DB {
	return r.db
}

// ArticleFilter narrows FindAll. A nil/zero field means no constraint on
// that column; set fields combine with AND.
type ArticleFilter struct {
	Category  *models.ArticleCategory
	Featured  *bool
	Published *bool
	Search    string
	TagIDs    []uint
	Limit     int
	Offset    int
}

// ArticleInput is the write payload for Create and Update. Tags is nil when
// the caller does not want the tag set touched; an empty non-nil slice
// clears it.
type ArticleInput struct {
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Description     string  `json:"description"`
	Content         string  `json:"content"`
	ImageURL        string  `json:"imageUrl"`
	ThumbnailURL    *string `json:"thumbnailUrl,omitempty"`
	Category        string  `json:"category"`
	IsFeatured      bool    `json:"isFeatured"`
	IsPublished     bool    `json:"isPublished"`
	ReadTime        *string `json:"readTime,omitempty"`
	Author          *string `json:"author,omitempty"`
	AuthorImageURL  *string `json:"authorImageUrl,omitempty"`
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
	Tags            *[]uint `json:"tags,omitempty"`
}

func (in ArticleInput) validate() (models.ArticleCategory, error) {
	required := map[string]string{
		"title":       in.Title,
		"slug":        in.Slug,
		"description": in.Description,
		"content":     in.Content,
		"imageUrl":    in.ImageURL,
		"category":    in.Category,
	}
	for _, field := range []string{"title", "slug", "description", "content", "imageUrl", "category"} {
		if strings.TrimSpace(required[field]) == "" {
			return "", errs.NewMissingRequiredFieldError(field)
		}
	}
	return models.ParseArticleCategory(in.Category)
}

// FindAll returns articles matching the filter, most recently published
// first, with their tags attached. Drafts have no publish timestamp, so
// they sort by creation time; the coalesce keeps the order identical on
// postgres and sqlite.
func (r *ArticleRepo) FindAll(filter ArticleFilter) ([]*models.Article, error) {
	query := r.db.Model(&models.Article{}).Preload("Tags").Order("COALESCE(published_at, created_at) DESC")

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Published != nil {
		query = query.Where("is_published = ?", *filter.Published)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}
	if len(filter.TagIDs) > 0 {
		tagged := r.db.Table("article_tags").
			Select("article_id").
			Where("tag_id IN ?", filter.TagIDs)
		query = query.Where("id IN (?)", tagged)
	}

	// No limit means no limit: an unfiltered listing returns every row.
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var articles []*models.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "articles", err)
	}
	return articles, nil
}

// FindByID returns one article with its tags
func (r *ArticleRepo) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.Preload("Tags").First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("article")
		}
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	return &article, nil
}

// FindBySlug returns one article with its tags
func (r *ArticleRepo) FindBySlug(slug string) (*models.Article, error) {
	var article models.Article
	if err := r.db.Preload("Tags").Where("slug = ?", slug).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("article")
		}
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	return &article, nil
}

// Create validates the payload, enforces slug uniqueness and inserts the
// article with its tag associations in one transaction. A slug conflict
// prevents the row write entirely.
func (r *ArticleRepo) Create(input ArticleInput) (*models.Article, error) {
	category, err := input.validate()
	if err != nil {
		return nil, err
	}

	article := models.Article{
		Title:           input.Title,
		Slug:            input.Slug,
		Description:     input.Description,
		Content:         input.Content,
		ImageURL:        input.ImageURL,
		ThumbnailURL:    input.ThumbnailURL,
		Category:        category,
		IsFeatured:      input.IsFeatured,
		IsPublished:     input.IsPublished,
		ReadTime:        input.ReadTime,
		Author:          input.Author,
		AuthorImageURL:  input.AuthorImageURL,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
	}
	if input.IsPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := slugTaken(tx, &models.Article{}, input.Slug, 0); err != nil {
			return err
		}
		if err := tx.Omit("Tags").Create(&article).Error; err != nil {
			return errs.NewDatabaseError("create", "article", err)
		}
		if input.Tags != nil {
			return replaceArticleTags(tx, article.ID, *input.Tags)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(article.ID)
}

// Update validates the payload, re-checks slug uniqueness against every
// other row, replaces the tag set when one is supplied, and applies the
// publish-timestamp rule: stamp on first publish, preserve on re-save,
// clear on unpublish.
func (r *ArticleRepo) Update(id uint, input ArticleInput) (*models.Article, error) {
	category, err := input.validate()
	if err != nil {
		return nil, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("article")
			}
			return errs.NewDatabaseError("find", "article", err)
		}

		if err := slugTaken(tx, &models.Article{}, input.Slug, id); err != nil {
			return err
		}

		article.Title = input.Title
		article.Slug = input.Slug
		article.Description = input.Description
		article.Content = input.Content
		article.ImageURL = input.ImageURL
		article.ThumbnailURL = input.ThumbnailURL
		article.Category = category
		article.IsFeatured = input.IsFeatured
		article.ReadTime = input.ReadTime
		article.Author = input.Author
		article.AuthorImageURL = input.AuthorImageURL
		article.MetaTitle = input.MetaTitle
		article.MetaDescription = input.MetaDescription
		article.PublishedAt = nextPublishedAt(article.PublishedAt, input.IsPublished)
		article.IsPublished = input.IsPublished

		if err := tx.Omit("Tags").Save(&article).Error; err != nil {
			return errs.NewDatabaseError("update", "article", err)
		}

		if input.Tags != nil {
			return replaceArticleTags(tx, id, *input.Tags)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(id)
}

// Delete removes the article's tag associations first, then the article
// row, and returns the deleted row's prior state
func (r *ArticleRepo) Delete(id uint) (*models.Article, error) {
	prior, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
			return errs.NewDatabaseError("delete associations of", "article", err)
		}
		if err := tx.Delete(&models.Article{}, id).Error; err != nil {
			return errs.NewDatabaseError("delete", "article", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prior, nil
}

// SetFeatured flips the featured flag without requiring the full payload
func (r *ArticleRepo) SetFeatured(id uint, featured bool) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("article")
		}
		return nil, errs.NewDatabaseError("find", "article", err)
	}

	if err := r.db.Model(&article).Update("is_featured", featured).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "article", err)
	}
	return r.FindByID(id)
}

// SetPublished flips the publish flag, managing the publish timestamp by
// the same rule as Update
func (r *ArticleRepo) SetPublished(id uint, published bool) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("article")
		}
		return nil, errs.NewDatabaseError("find", "article", err)
	}

	updates := map[string]interface{}{
		"is_published": published,
		"published_at": nextPublishedAt(article.PublishedAt, published),
	}
	if err := r.db.Model(&article).Updates(updates).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "article", err)
	}
	return r.FindByID(id)
}

// Count returns the total number of articles
func (r *ArticleRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Article{}).Count(&count).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "articles", err)
	}
	return count, nil
}

// CountPublished returns the number of published articles
func (r *ArticleRepo) CountPublished() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Article{}).Where("is_published = ?", true).Count(&count).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "articles", err)
	}
	return count, nil
}

// nextPublishedAt applies the publish-timestamp rule: transitioning to
// published stamps the time only when it was never set; unpublishing
// always clears it.
func nextPublishedAt(current *time.Time, published bool) *time.Time {
	if !published {
		return nil
	}
	if current != nil {
		return current
	}
	now := time.Now()
	return &now
}

// slugTaken reports a conflict when another row of the model already uses
// the slug. excludeID skips the row being updated.
func slugTaken(tx *gorm.DB, model interface{}, slug string, excludeID uint) error {
	query := tx.Model(model).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return errs.NewDatabaseError("check slug of", entityName(model), err)
	}
	if count > 0 {
		return errs.NewSlugConflict(entityName(model), slug)
	}
	return nil
}

func entityName(model interface{}) string {
	switch model.(type) {
	case *models.Article:
		return "article"
	case *models.Event:
		return "event"
	case *models.Tag:
		return "tag"
	default:
		return "record"
	}
}

// replaceArticleTags swaps the article's full tag set: delete everything,
// insert one row per requested tag id. Idempotent with respect to the end
// state, not minimal in writes.
func replaceArticleTags(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleTag{}).Error; err != nil {
		return errs.NewDatabaseError("replace tags of", "article", err)
	}
	for _, tagID := range tagIDs {
		assoc := models.ArticleTag{ArticleID: articleID, TagID: tagID}
		if err := tx.Create(&assoc).Error; err != nil {
			return errs.NewDatabaseError("replace tags of", "article", err)
		}
	}
	return nil
}
