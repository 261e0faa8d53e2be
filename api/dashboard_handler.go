package api

import (
	"net/http"

	"github.com/mindhaven-org/backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type dashboardHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
}

func newDashboardHandler(database database.Database) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		database:  database,
	}
}

// DashboardStats summarizes content volume and engagement for the admin
// dashboard landing page
type DashboardStats struct {
	Articles          int64                     `json:"articles"`
	PublishedArticles int64                     `json:"publishedArticles"`
	Events            int64                     `json:"events"`
	Jobs              int64                     `json:"jobs"`
	Subscribers       int64                     `json:"subscribers"`
	UnreadMessages    int64                     `json:"unreadMessages"`
	PendingComments   int64                     `json:"pendingComments"`
	Engagement        *database.AnalyticsTotals `json:"engagement"`
}

// getStats aggregates entity counts and engagement totals
func (h dashboardHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleRepo := h.database.ArticleRepo()

		articles, err := articleRepo.Count()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		publishedArticles, err := articleRepo.CountPublished()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		events, err := h.database.EventRepo().Count()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		jobs, err := h.database.JobRepo().Count()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		subscribers, err := h.database.SubscriberRepo().Count()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		unreadMessages, err := h.database.ContactMessageRepo().CountUnread()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		pendingComments, err := h.database.CommentRepo().CountPending()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		engagement, err := h.database.AnalyticsRepo().Totals()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, DashboardStats{
			Articles:          articles,
			PublishedArticles: publishedArticles,
			Events:            events,
			Jobs:              jobs,
			Subscribers:       subscribers,
			UnreadMessages:    unreadMessages,
			PendingComments:   pendingComments,
			Engagement:        engagement,
		})
	}
}
