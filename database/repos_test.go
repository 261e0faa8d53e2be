package database

import (
	"testing"

	"github.com/mindhaven-org/backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func articleInput(title, slug string) ArticleInput {
	return ArticleInput{
		Title:       title,
		Slug:        slug,
		Description: "A description",
		Content:     "Some content",
		ImageURL:    "https://example.com/image.jpg",
		Category:    "Research",
	}
}

func seedTag(t *testing.T, repo *TagRepo, name, slug string) *models.Tag {
	t.Helper()
	tag, err := repo.Create(TagInput{Name: name, Slug: slug})
	if err != nil {
		t.Fatalf("Failed to seed tag %s: %v", name, err)
	}
	return tag
}
