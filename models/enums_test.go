package models

import (
	"testing"

	"github.com/mindhaven-org/backend/errs"
)

func TestParseArticleCategory(t *testing.T) {
	for _, raw := range []string{"Innovation", "Industry Insights", "Impact", "Company News", "Research", "Events"} {
		category, err := ParseArticleCategory(raw)
		if err != nil {
			t.Errorf("Expected %q to parse, got %v", raw, err)
		}
		if string(category) != raw {
			t.Errorf("Expected %q, got %q", raw, category)
		}
	}
}

func TestParseArticleCategoryRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "research", "News", "IMPACT"} {
		if _, err := ParseArticleCategory(raw); !errs.IsValidation(err) {
			t.Errorf("Expected %q to be rejected, got %v", raw, err)
		}
	}
}

func TestParseEventType(t *testing.T) {
	for _, raw := range []string{"Webinar", "Conference", "Workshop", "Summit", "Meetup", "Virtual Event", "In-Person"} {
		eventType, err := ParseEventType(raw)
		if err != nil {
			t.Errorf("Expected %q to parse, got %v", raw, err)
		}
		if string(eventType) != raw {
			t.Errorf("Expected %q, got %q", raw, eventType)
		}
	}
}

func TestParseEventTypeRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "webinar", "Hybrid"} {
		if _, err := ParseEventType(raw); !errs.IsValidation(err) {
			t.Errorf("Expected %q to be rejected, got %v", raw, err)
		}
	}
}
