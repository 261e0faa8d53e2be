package models

import (
	"fmt"

	"github.com/mindhaven-org/backend/errs"
)

// ArticleCategory is the editorial category of an article. Unknown values
// are rejected at the boundary instead of being written through.
type ArticleCategory string

const (
	CategoryInnovation       ArticleCategory = "Innovation"
	CategoryIndustryInsights ArticleCategory = "Industry Insights"
	CategoryImpact           ArticleCategory = "Impact"
	CategoryCompanyNews      ArticleCategory = "Company News"
	CategoryResearch         ArticleCategory = "Research"
	CategoryEvents           ArticleCategory = "Events"
)

var articleCategories = []ArticleCategory{
	CategoryInnovation,
	CategoryIndustryInsights,
	CategoryImpact,
	CategoryCompanyNews,
	CategoryResearch,
	CategoryEvents,
}

// ParseArticleCategory validates a raw category string
func ParseArticleCategory(s string) (ArticleCategory, error) {
	for _, c := range articleCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", errs.NewInvalidFieldError("category", fmt.Sprintf("unknown category %q", s))
}

// EventType is the format of an event
type EventType string

const (
	EventTypeWebinar    EventType = "Webinar"
	EventTypeConference EventType = "Conference"
	EventTypeWorkshop   EventType = "Workshop"
	EventTypeSummit     EventType = "Summit"
	EventTypeMeetup     EventType = "Meetup"
	EventTypeVirtual    EventType = "Virtual Event"
	EventTypeInPerson   EventType = "In-Person"
)

var eventTypes = []EventType{
	EventTypeWebinar,
	EventTypeConference,
	EventTypeWorkshop,
	EventTypeSummit,
	EventTypeMeetup,
	EventTypeVirtual,
	EventTypeInPerson,
}

// ParseEventType validates a raw event type string
func ParseEventType(s string) (EventType, error) {
	for _, t := range eventTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errs.NewInvalidFieldError("eventType", fmt.Sprintf("unknown event type %q", s))
}
