package database

import (
	"errors"
	"strings"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// CommentInput is the write payload for Create
type CommentInput struct {
	ArticleID  uint   `json:"articleId"`
	AuthorName string `json:"authorName"`
	Content    string `json:"content"`
}

// ForArticle returns an article's comments, newest first. When
// approvedOnly is set, held comments are excluded.
func (r *CommentRepo) ForArticle(articleID uint, approvedOnly bool) ([]*models.Comment, error) {
	query := r.db.Where("article_id = ?", articleID).Order("created_at DESC")
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}
	var comments []*models.Comment
	if err := query.Find(&comments).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "comments", err)
	}
	return comments, nil
}

// Create inserts a comment, unapproved, after verifying the article exists
func (r *CommentRepo) Create(input CommentInput) (*models.Comment, error) {
	if input.ArticleID == 0 {
		return nil, errs.NewMissingRequiredFieldError("articleId")
	}
	if strings.TrimSpace(input.AuthorName) == "" {
		return nil, errs.NewMissingRequiredFieldError("authorName")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errs.NewMissingRequiredFieldError("content")
	}

	var count int64
	if err := r.db.Model(&models.Article{}).Where("id = ?", input.ArticleID).Count(&count).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	if count == 0 {
		return nil, errs.NewNotFound("article")
	}

	comment := models.Comment{
		ArticleID:  input.ArticleID,
		AuthorName: input.AuthorName,
		Content:    input.Content,
	}
	if err := r.db.Create(&comment).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "comment", err)
	}
	return &comment, nil
}

// SetApproved flips the approval flag
func (r *CommentRepo) SetApproved(id uint, approved bool) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("comment")
		}
		return nil, errs.NewDatabaseError("find", "comment", err)
	}
	if err := r.db.Model(&comment).Update("is_approved", approved).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "comment", err)
	}
	return &comment, nil
}

// CountPending returns the number of comments awaiting moderation
func (r *CommentRepo) CountPending() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("is_approved = ?", false).Count(&count).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "comments", err)
	}
	return count, nil
}

// Delete removes a comment
func (r *CommentRepo) Delete(id uint) error {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("comment")
		}
		return errs.NewDatabaseError("find", "comment", err)
	}
	if err := r.db.Delete(&comment).Error; err != nil {
		return errs.NewDatabaseError("delete", "comment", err)
	}
	return nil
}
