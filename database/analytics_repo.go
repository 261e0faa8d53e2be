package database

import (
	"errors"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"gorm.io/gorm"
)

type AnalyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db}
}

// AnalyticsTotals aggregates counters across all rows for dashboard stats
type AnalyticsTotals struct {
	Views         int `json:"views"`
	Shares        int `json:"shares"`
	Likes         int `json:"likes"`
	Registrations int `json:"registrations"`
}

// ForArticle returns the article's counter row, creating a zeroed one if
// none exists yet
func (r *AnalyticsRepo) ForArticle(articleID uint) (*models.Analytics, error) {
	var row models.Analytics
	err := r.db.Where("article_id = ?", articleID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.Analytics{ArticleID: &articleID}
		if err := r.db.Create(&row).Error; err != nil {
			return nil, errs.NewDatabaseError("create", "analytics", err)
		}
		return &row, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "analytics", err)
	}
	return &row, nil
}

// ForEvent returns the event's counter row, creating a zeroed one if none
// exists yet
func (r *AnalyticsRepo) ForEvent(eventID uint) (*models.Analytics, error) {
	var row models.Analytics
	err := r.db.Where("event_id = ?", eventID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.Analytics{EventID: &eventID}
		if err := r.db.Create(&row).Error; err != nil {
			return nil, errs.NewDatabaseError("create", "analytics", err)
		}
		return &row, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "analytics", err)
	}
	return &row, nil
}

// Increment bumps one counter column on a row by id. column must be one
// of views, shares, likes, registrations.
func (r *AnalyticsRepo) Increment(id uint, column string) error {
	switch column {
	case "views", "shares", "likes", "registrations":
	default:
		return errs.NewInvalidFieldError("counter", "unknown counter "+column)
	}

	result := r.db.Model(&models.Analytics{}).
		Where("id = ?", id).
		Update(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return errs.NewDatabaseError("update", "analytics", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("analytics")
	}
	return nil
}

// Totals sums every counter column across all rows
func (r *AnalyticsRepo) Totals() (*AnalyticsTotals, error) {
	var totals AnalyticsTotals
	err := r.db.Model(&models.Analytics{}).
		Select("COALESCE(SUM(views),0) AS views, COALESCE(SUM(shares),0) AS shares, COALESCE(SUM(likes),0) AS likes, COALESCE(SUM(registrations),0) AS registrations").
		Scan(&totals).Error
	if err != nil {
		return nil, errs.NewDatabaseError("aggregate", "analytics", err)
	}
	return &totals, nil
}
