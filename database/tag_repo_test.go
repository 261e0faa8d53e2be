package database

import (
	"testing"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
)

func TestCreateTag(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepo(db)

	tag, err := repo.Create(TagInput{Name: "Anxiety", Slug: "anxiety"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if tag.ID == 0 {
		t.Error("Expected tag to be assigned an ID")
	}
}

func TestTagNameConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepo(db)

	if _, err := repo.Create(TagInput{Name: "Anxiety", Slug: "anxiety"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := repo.Create(TagInput{Name: "Anxiety", Slug: "anxiety-2"}); !errs.IsConflict(err) {
		t.Errorf("Expected conflict for duplicate name, got %v", err)
	}
	if _, err := repo.Create(TagInput{Name: "Anxiety Tips", Slug: "anxiety"}); !errs.IsConflict(err) {
		t.Errorf("Expected conflict for duplicate slug, got %v", err)
	}
}

func TestUpdateTagKeepsOwnNameAndSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepo(db)

	tag, err := repo.Create(TagInput{Name: "Mindfulness", Slug: "mindfulness"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Re-saving the same name and slug must not conflict with itself
	if _, err := repo.Update(tag.ID, TagInput{Name: "Mindfulness", Slug: "mindfulness"}); err != nil {
		t.Errorf("Expected self-update to succeed, got %v", err)
	}
}

func TestTagsForArticleOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	tagRepo := NewTagRepo(db)
	articleRepo := NewArticleRepo(db)

	zebra := seedTag(t, tagRepo, "Zen", "zen")
	alpha := seedTag(t, tagRepo, "Awareness", "awareness")
	seedTag(t, tagRepo, "Unused", "unused")

	input := articleInput("Ordered Tags", "ordered-tags")
	input.Tags = &[]uint{zebra.ID, alpha.ID}
	article, err := articleRepo.Create(input)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tags, err := tagRepo.ForArticle(article.ID)
	if err != nil {
		t.Fatalf("ForArticle failed: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("Expected 2 tags, got %d", len(tags))
	}
	if tags[0].Name != "Awareness" || tags[1].Name != "Zen" {
		t.Errorf("Expected tags ordered by name, got %s then %s", tags[0].Name, tags[1].Name)
	}
}

func TestDeleteTagRemovesAssociations(t *testing.T) {
	db := setupTestDB(t)
	tagRepo := NewTagRepo(db)
	articleRepo := NewArticleRepo(db)

	tag := seedTag(t, tagRepo, "Doomed", "doomed-tag")

	input := articleInput("Keeps Living", "keeps-living")
	input.Tags = &[]uint{tag.ID}
	article, err := articleRepo.Create(input)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := tagRepo.Delete(tag.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var associations int64
	if err := db.Model(&models.ArticleTag{}).Where("tag_id = ?", tag.ID).Count(&associations).Error; err != nil {
		t.Fatalf("Counting associations failed: %v", err)
	}
	if associations != 0 {
		t.Errorf("Expected no associations left after tag delete, got %d", associations)
	}

	// The article survives with an empty tag set
	reloaded, err := articleRepo.FindByID(article.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if len(reloaded.Tags) != 0 {
		t.Errorf("Expected article's tag set emptied, got %d tags", len(reloaded.Tags))
	}
}

func TestTagValidation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepo(db)

	if _, err := repo.Create(TagInput{Slug: "no-name"}); !errs.IsValidation(err) {
		t.Errorf("Expected validation error for missing name, got %v", err)
	}
	if _, err := repo.Create(TagInput{Name: "No Slug"}); !errs.IsValidation(err) {
		t.Errorf("Expected validation error for missing slug, got %v", err)
	}
}
