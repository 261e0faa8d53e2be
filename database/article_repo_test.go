package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
)

func TestCreateArticle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	article, err := repo.Create(articleInput("Understanding Anxiety", "understanding-anxiety"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if article.ID == 0 {
		t.Error("Expected article to be assigned an ID")
	}
	if article.Slug != "understanding-anxiety" {
		t.Errorf("Expected slug 'understanding-anxiety', got %s", article.Slug)
	}
	if article.IsPublished {
		t.Error("Expected article to default to unpublished")
	}
	if article.PublishedAt != nil {
		t.Error("Expected no publish timestamp on an unpublished article")
	}
}

func TestCreateArticleMissingField(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	input := articleInput("No Slug", "no-slug")
	input.Content = ""

	if _, err := repo.Create(input); !errs.IsValidation(err) {
		t.Errorf("Expected validation error for missing content, got %v", err)
	}
}

func TestCreateArticleInvalidCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	input := articleInput("Bad Category", "bad-category")
	input.Category = "Gossip"

	if _, err := repo.Create(input); !errs.IsValidation(err) {
		t.Errorf("Expected validation error for unknown category, got %v", err)
	}
}

func TestCreateArticleSlugConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	if _, err := repo.Create(articleInput("First", "shared-slug")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err := repo.Create(articleInput("Second", "shared-slug"))
	if !errs.IsConflict(err) {
		t.Fatalf("Expected conflict error for duplicate slug, got %v", err)
	}

	// The conflicting create must not have written anything
	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 article after rejected create, got %d", count)
	}
}

func TestUpdateArticleKeepsOwnSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	article, err := repo.Create(articleInput("Original", "keep-this-slug"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	input := articleInput("Renamed", "keep-this-slug")
	updated, err := repo.Update(article.ID, input)
	if err != nil {
		t.Fatalf("Update with unchanged slug failed: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("Expected title 'Renamed', got %s", updated.Title)
	}
}

func TestUpdateArticleSlugConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	if _, err := repo.Create(articleInput("First", "taken-slug")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := repo.Create(articleInput("Second", "free-slug"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	input := articleInput("Second", "taken-slug")
	if _, err := repo.Update(second.ID, input); !errs.IsConflict(err) {
		t.Fatalf("Expected conflict moving to an occupied slug, got %v", err)
	}

	// The rejected update must not have touched the row
	reloaded, err := repo.FindByID(second.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if reloaded.Slug != "free-slug" {
		t.Errorf("Expected slug to remain 'free-slug', got %s", reloaded.Slug)
	}
}

func TestArticleTagReplacement(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)
	tagRepo := NewTagRepo(db)

	anxiety := seedTag(t, tagRepo, "Anxiety", "anxiety")
	mindfulness := seedTag(t, tagRepo, "Mindfulness", "mindfulness")
	therapy := seedTag(t, tagRepo, "Therapy", "therapy")

	input := articleInput("Tagged", "tagged")
	input.Tags = &[]uint{anxiety.ID, mindfulness.ID}

	article, err := repo.Create(input)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(article.Tags) != 2 {
		t.Fatalf("Expected 2 tags after create, got %d", len(article.Tags))
	}

	// Replacing the set removes old associations and adds new ones
	input.Tags = &[]uint{therapy.ID}
	updated, err := repo.Update(article.ID, input)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(updated.Tags) != 1 {
		t.Fatalf("Expected 1 tag after replacement, got %d", len(updated.Tags))
	}
	if updated.Tags[0].Name != "Therapy" {
		t.Errorf("Expected remaining tag 'Therapy', got %s", updated.Tags[0].Name)
	}

	// A nil tag set leaves the associations untouched
	input.Tags = nil
	untouched, err := repo.Update(article.ID, input)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(untouched.Tags) != 1 {
		t.Errorf("Expected tag set untouched with nil tags, got %d tags", len(untouched.Tags))
	}

	// An empty non-nil set clears every association
	input.Tags = &[]uint{}
	cleared, err := repo.Update(article.ID, input)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(cleared.Tags) != 0 {
		t.Errorf("Expected no tags after clearing, got %d", len(cleared.Tags))
	}
}

func TestDeleteArticleRemovesAssociations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)
	tagRepo := NewTagRepo(db)

	tag := seedTag(t, tagRepo, "Wellness", "wellness")

	input := articleInput("Doomed", "doomed")
	input.Tags = &[]uint{tag.ID}
	article, err := repo.Create(input)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := repo.Delete(article.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var associations int64
	if err := db.Model(&models.ArticleTag{}).Where("article_id = ?", article.ID).Count(&associations).Error; err != nil {
		t.Fatalf("Counting associations failed: %v", err)
	}
	if associations != 0 {
		t.Errorf("Expected no associations left after delete, got %d", associations)
	}

	// The tag itself survives
	if _, err := tagRepo.FindByID(tag.ID); err != nil {
		t.Errorf("Expected tag to survive article deletion: %v", err)
	}
}

func TestFindAllCombinedFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)
	tagRepo := NewTagRepo(db)

	tag := seedTag(t, tagRepo, "Sleep", "sleep")

	match := articleInput("Sleep Hygiene Basics", "sleep-hygiene")
	match.Category = "Research"
	match.IsPublished = true
	match.Tags = &[]uint{tag.ID}
	if _, err := repo.Create(match); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Same category and tag but unpublished
	held := articleInput("Sleep Draft", "sleep-draft")
	held.Category = "Research"
	held.Tags = &[]uint{tag.ID}
	if _, err := repo.Create(held); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Published but different category, no tag
	other := articleInput("Company Update", "company-update")
	other.Category = "Company News"
	other.IsPublished = true
	if _, err := repo.Create(other); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	category := models.CategoryResearch
	published := true
	results, err := repo.FindAll(ArticleFilter{
		Category:  &category,
		Published: &published,
		Search:    "sleep",
		TagIDs:    []uint{tag.ID},
	})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("Expected exactly 1 article matching all filters, got %d", len(results))
	}
	if results[0].Slug != "sleep-hygiene" {
		t.Errorf("Expected 'sleep-hygiene', got %s", results[0].Slug)
	}
}

func TestFindAllSearchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	if _, err := repo.Create(articleInput("Coping With Burnout", "coping-with-burnout")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	results, err := repo.FindAll(ArticleFilter{Search: "BURNOUT"})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Expected case-insensitive match, got %d results", len(results))
	}
}

func TestFindAllLimitAndOffset(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	for _, slug := range []string{"one", "two", "three"} {
		if _, err := repo.Create(articleInput("Article "+slug, slug)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	page, err := repo.FindAll(ArticleFilter{Limit: 2})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(page) != 2 {
		t.Errorf("Expected 2 articles with limit 2, got %d", len(page))
	}

	rest, err := repo.FindAll(ArticleFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(rest) != 1 {
		t.Errorf("Expected 1 article at offset 2, got %d", len(rest))
	}
}

func TestFindAllWithoutLimitReturnsEveryRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	const total = 120
	for i := 0; i < total; i++ {
		if _, err := repo.Create(articleInput(fmt.Sprintf("Article %d", i), fmt.Sprintf("article-%d", i))); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	results, err := repo.FindAll(ArticleFilter{})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(results) != total {
		t.Errorf("Expected every row without a limit, created %d, got %d", total, len(results))
	}
}

func TestFindAllSortsDraftsByCreationTime(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	oldInput := articleInput("Old Published", "old-published")
	oldInput.IsPublished = true
	if _, err := repo.Create(oldInput); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := repo.Create(articleInput("Middle Draft", "middle-draft")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	newInput := articleInput("New Published", "new-published")
	newInput.IsPublished = true
	if _, err := repo.Create(newInput); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	results, err := repo.FindAll(ArticleFilter{})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 articles, got %d", len(results))
	}
	for i, want := range []string{"new-published", "middle-draft", "old-published"} {
		if results[i].Slug != want {
			t.Errorf("Expected %s at position %d, got %s", want, i, results[i].Slug)
		}
	}
}

func TestPublishTimestampLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	article, err := repo.Create(articleInput("Lifecycle", "lifecycle"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// First publish stamps the timestamp
	published, err := repo.SetPublished(article.ID, true)
	if err != nil {
		t.Fatalf("SetPublished failed: %v", err)
	}
	if published.PublishedAt == nil {
		t.Fatal("Expected publish timestamp to be stamped on first publish")
	}
	firstStamp := *published.PublishedAt

	// Re-saving while published preserves the original timestamp
	time.Sleep(10 * time.Millisecond)
	input := articleInput("Lifecycle", "lifecycle")
	input.IsPublished = true
	resaved, err := repo.Update(article.ID, input)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if resaved.PublishedAt == nil || !resaved.PublishedAt.Equal(firstStamp) {
		t.Errorf("Expected publish timestamp preserved on re-save, got %v (want %v)", resaved.PublishedAt, firstStamp)
	}

	// Unpublishing clears the timestamp
	unpublished, err := repo.SetPublished(article.ID, false)
	if err != nil {
		t.Fatalf("SetPublished failed: %v", err)
	}
	if unpublished.IsPublished {
		t.Error("Expected article to be unpublished")
	}
	if unpublished.PublishedAt != nil {
		t.Error("Expected publish timestamp cleared on unpublish")
	}

	// Publishing again stamps a fresh timestamp
	republished, err := repo.SetPublished(article.ID, true)
	if err != nil {
		t.Fatalf("SetPublished failed: %v", err)
	}
	if republished.PublishedAt == nil {
		t.Fatal("Expected fresh publish timestamp on republish")
	}
	if !republished.PublishedAt.After(firstStamp) {
		t.Error("Expected republish timestamp to be newer than the original")
	}
}

func TestSetFeatured(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	article, err := repo.Create(articleInput("Feature Me", "feature-me"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	featured, err := repo.SetFeatured(article.ID, true)
	if err != nil {
		t.Fatalf("SetFeatured failed: %v", err)
	}
	if !featured.IsFeatured {
		t.Error("Expected article to be featured")
	}
}

func TestFindByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepo(db)

	if _, err := repo.FindByID(9999); !errs.IsNotFound(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}
