package database

import (
	"testing"
	"time"

	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
)

func eventInput(title, slug string, start time.Time) EventInput {
	return EventInput{
		Title:       title,
		Slug:        slug,
		Description: "An event description",
		StartDate:   start,
		EventType:   "Webinar",
	}
}

func TestCreateEvent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepo(db)

	event, err := repo.Create(eventInput("Managing Stress", "managing-stress", time.Now().Add(24*time.Hour)))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if event.ID == 0 {
		t.Error("Expected event to be assigned an ID")
	}
	if event.EventType != models.EventTypeWebinar {
		t.Errorf("Expected event type %q, got %q", models.EventTypeWebinar, event.EventType)
	}
}

func TestCreateEventInvalidType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepo(db)

	input := eventInput("Bad Type", "bad-type", time.Now())
	input.EventType = "Rave"

	if _, err := repo.Create(input); !errs.IsValidation(err) {
		t.Errorf("Expected validation error for unknown event type, got %v", err)
	}
}

func TestCreateEventMissingStartDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepo(db)

	input := eventInput("No Date", "no-date", time.Time{})
	if _, err := repo.Create(input); !errs.IsValidation(err) {
		t.Errorf("Expected validation error for missing start date, got %v", err)
	}
}

func TestEventSlugConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepo(db)

	if _, err := repo.Create(eventInput("First", "annual-summit", time.Now())); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := repo.Create(eventInput("Second", "annual-summit", time.Now())); !errs.IsConflict(err) {
		t.Errorf("Expected conflict error for duplicate slug, got %v", err)
	}
}

func TestEventSlugIndependentOfArticleSlugs(t *testing.T) {
	db := setupTestDB(t)
	eventRepo := NewEventRepo(db)
	articleRepo := NewArticleRepo(db)

	// Articles and events have separate slug namespaces
	if _, err := articleRepo.Create(articleInput("Article", "shared-name")); err != nil {
		t.Fatalf("Create article failed: %v", err)
	}
	if _, err := eventRepo.Create(eventInput("Event", "shared-name", time.Now())); err != nil {
		t.Errorf("Expected event slug to be independent of article slugs, got %v", err)
	}
}

func TestEventFutureAndPastFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepo(db)

	if _, err := repo.Create(eventInput("Upcoming", "upcoming", time.Now().Add(48*time.Hour))); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := repo.Create(eventInput("Finished", "finished", time.Now().Add(-48*time.Hour))); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	future, err := repo.FindAll(EventFilter{Future: true})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(future) != 1 || future[0].Slug != "upcoming" {
		t.Errorf("Expected only the upcoming event, got %d results", len(future))
	}

	past, err := repo.FindAll(EventFilter{Past: true})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(past) != 1 || past[0].Slug != "finished" {
		t.Errorf("Expected only the finished event, got %d results", len(past))
	}
}

func TestEventPublishTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepo(db)

	event, err := repo.Create(eventInput("Toggle Me", "toggle-me", time.Now()))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if event.PublishedAt != nil {
		t.Error("Expected no publish timestamp on an unpublished event")
	}

	published, err := repo.SetPublished(event.ID, true)
	if err != nil {
		t.Fatalf("SetPublished failed: %v", err)
	}
	if published.PublishedAt == nil {
		t.Fatal("Expected publish timestamp after publishing")
	}

	unpublished, err := repo.SetPublished(event.ID, false)
	if err != nil {
		t.Fatalf("SetPublished failed: %v", err)
	}
	if unpublished.PublishedAt != nil {
		t.Error("Expected publish timestamp cleared on unpublish")
	}
}

func TestDeleteEvent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepo(db)

	event, err := repo.Create(eventInput("Doomed", "doomed-event", time.Now()))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	prior, err := repo.Delete(event.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if prior.Slug != "doomed-event" {
		t.Errorf("Expected prior state returned from delete, got %s", prior.Slug)
	}

	if _, err := repo.FindByID(event.ID); !errs.IsNotFound(err) {
		t.Errorf("Expected not-found after delete, got %v", err)
	}
}
