package api

import (
	"github.com/mindhaven-org/backend/database"
	"github.com/mindhaven-org/backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, uploader services.Uploader, notifier services.Notifier) *routeHandlers {
	return &routeHandlers{
		articleHandler:    newArticleHandler(database.ArticleRepo(), database.AnalyticsRepo()),
		eventHandler:      newEventHandler(database.EventRepo()),
		tagHandler:        newTagHandler(database.TagRepo()),
		jobHandler:        newJobHandler(database.JobRepo()),
		serviceHandler:    newServiceHandler(database.ServiceRepo()),
		teamHandler:       newTeamHandler(database.TeamRepo()),
		partnerHandler:    newPartnerHandler(database.PartnerRepo(), database.HallOfFameRepo(), database.SuccessStoryRepo()),
		subscriberHandler: newSubscriberHandler(database.SubscriberRepo()),
		mediaHandler:      newMediaHandler(database.MediaRepo(), uploader),
		commentHandler:    newCommentHandler(database.CommentRepo(), database.ArticleRepo()),
		contactHandler:    newContactHandler(database.ContactMessageRepo(), notifier),
		dashboardHandler:  newDashboardHandler(database),
	}
}
