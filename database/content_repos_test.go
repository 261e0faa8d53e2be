package database

import (
	"fmt"
	"testing"

	"github.com/mindhaven-org/backend/errs"
)

func TestJobActiveFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepo(db)

	if _, err := repo.Create(JobInput{Title: "Therapist", Description: "Full time"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	inactive := false
	if _, err := repo.Create(JobInput{Title: "Old Role", Description: "Closed", IsActive: &inactive}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	active := true
	jobs, err := repo.FindAll(&active)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Therapist" {
		t.Errorf("Expected only the active job, got %d results", len(jobs))
	}

	all, err := repo.FindAll(nil)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected all jobs with nil filter, got %d", len(all))
	}
}

func TestSubscriberEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriberRepo(db)

	if _, err := repo.Create(SubscriberInput{Email: "pat@example.com"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := repo.Create(SubscriberInput{Email: "pat@example.com"}); !errs.IsConflict(err) {
		t.Errorf("Expected conflict for duplicate email, got %v", err)
	}
}

func TestSubscriberListWithoutLimitReturnsEveryRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriberRepo(db)

	const total = 110
	for i := 0; i < total; i++ {
		if _, err := repo.Create(SubscriberInput{Email: fmt.Sprintf("person%d@example.com", i)}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	subscribers, err := repo.FindAll(SubscriberFilter{})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(subscribers) != total {
		t.Errorf("Expected every subscriber without a limit, created %d, got %d", total, len(subscribers))
	}
}

func TestCommentModeration(t *testing.T) {
	db := setupTestDB(t)
	commentRepo := NewCommentRepo(db)
	articleRepo := NewArticleRepo(db)

	article, err := articleRepo.Create(articleInput("Discussed", "discussed"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	comment, err := commentRepo.Create(CommentInput{
		ArticleID:  article.ID,
		AuthorName: "Sam",
		Content:    "Helpful article, thank you",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if comment.IsApproved {
		t.Error("Expected new comments to be held for moderation")
	}

	// Held comments are invisible to the public listing
	visible, err := commentRepo.ForArticle(article.ID, true)
	if err != nil {
		t.Fatalf("ForArticle failed: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("Expected no approved comments yet, got %d", len(visible))
	}

	if _, err := commentRepo.SetApproved(comment.ID, true); err != nil {
		t.Fatalf("SetApproved failed: %v", err)
	}

	visible, err = commentRepo.ForArticle(article.ID, true)
	if err != nil {
		t.Fatalf("ForArticle failed: %v", err)
	}
	if len(visible) != 1 {
		t.Errorf("Expected 1 approved comment, got %d", len(visible))
	}
}

func TestCommentRequiresExistingArticle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepo(db)

	_, err := repo.Create(CommentInput{ArticleID: 9999, AuthorName: "Sam", Content: "Hello"})
	if !errs.IsNotFound(err) {
		t.Errorf("Expected not-found for comment on missing article, got %v", err)
	}
}

func TestContactMessageUnreadFlow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactMessageRepo(db)

	msg, err := repo.Create(ContactMessageInput{
		Name:    "Alex",
		Email:   "alex@example.com",
		Message: "I would like to learn more about your services",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if msg.IsRead {
		t.Error("Expected new messages to start unread")
	}

	unread, err := repo.CountUnread()
	if err != nil {
		t.Fatalf("CountUnread failed: %v", err)
	}
	if unread != 1 {
		t.Errorf("Expected 1 unread message, got %d", unread)
	}

	if _, err := repo.MarkRead(msg.ID); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}

	unread, err = repo.CountUnread()
	if err != nil {
		t.Fatalf("CountUnread failed: %v", err)
	}
	if unread != 0 {
		t.Errorf("Expected 0 unread messages after MarkRead, got %d", unread)
	}
}

func TestAnalyticsIncrementAndTotals(t *testing.T) {
	db := setupTestDB(t)
	analyticsRepo := NewAnalyticsRepo(db)
	articleRepo := NewArticleRepo(db)

	article, err := articleRepo.Create(articleInput("Tracked", "tracked"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	row, err := analyticsRepo.ForArticle(article.ID)
	if err != nil {
		t.Fatalf("ForArticle failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := analyticsRepo.Increment(row.ID, "views"); err != nil {
			t.Fatalf("Increment failed: %v", err)
		}
	}
	if err := analyticsRepo.Increment(row.ID, "likes"); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	if err := analyticsRepo.Increment(row.ID, "rating"); !errs.IsValidation(err) {
		t.Errorf("Expected validation error for unknown counter, got %v", err)
	}

	totals, err := analyticsRepo.Totals()
	if err != nil {
		t.Fatalf("Totals failed: %v", err)
	}
	if totals.Views != 3 || totals.Likes != 1 {
		t.Errorf("Expected 3 views and 1 like, got %d and %d", totals.Views, totals.Likes)
	}
}
