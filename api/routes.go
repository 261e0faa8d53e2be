package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes sets up the routes the marketing site reads without
// authentication. Listings only return published content.
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/articles", handlers.articleHandler.getPublishedArticles())
		r.Get("/articles/{slug}", handlers.articleHandler.getArticleBySlug())
		r.Get("/articles/{slug}/comments", handlers.commentHandler.getApprovedComments())
		r.Post("/articles/{slug}/comments", handlers.commentHandler.createComment())
		r.Post("/articles/{slug}/view", handlers.articleHandler.trackView())

		r.Get("/events", handlers.eventHandler.getPublishedEvents())
		r.Get("/events/{slug}", handlers.eventHandler.getEventBySlug())

		r.Get("/tags", handlers.tagHandler.getAllTags())
		r.Get("/jobs", handlers.jobHandler.getActiveJobs())
		r.Get("/services", handlers.serviceHandler.getAllServices())
		r.Get("/team", handlers.teamHandler.getAllTeamMembers())
		r.Get("/partners", handlers.partnerHandler.getAllPartners())
		r.Get("/hall-of-fame", handlers.partnerHandler.getAllHallOfFame())
		r.Get("/success-stories", handlers.partnerHandler.getAllSuccessStories())

		r.Post("/subscribe", handlers.subscriberHandler.subscribe())
		r.Post("/contact", handlers.contactHandler.createContactMessage())
	})
}

// setupAdminRoutes sets up the dashboard routes behind authentication
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/dashboard", handlers.dashboardHandler.getStats())

		// Article endpoints
		r.Get("/articles", handlers.articleHandler.getAllArticles())
		r.Get("/article/{articleID}", handlers.articleHandler.getArticle())
		r.Post("/article", handlers.articleHandler.createArticle())
		r.Put("/article/{articleID}", handlers.articleHandler.updateArticle())
		r.Delete("/article/{articleID}", handlers.articleHandler.deleteArticle())
		r.Patch("/article/{articleID}/featured", handlers.articleHandler.toggleFeatured())
		r.Patch("/article/{articleID}/published", handlers.articleHandler.togglePublished())
		r.Get("/article/{articleID}/tags", handlers.tagHandler.getTagsForArticle())

		// Event endpoints
		r.Get("/events", handlers.eventHandler.getAllEvents())
		r.Get("/event/{eventID}", handlers.eventHandler.getEvent())
		r.Post("/event", handlers.eventHandler.createEvent())
		r.Put("/event/{eventID}", handlers.eventHandler.updateEvent())
		r.Delete("/event/{eventID}", handlers.eventHandler.deleteEvent())
		r.Patch("/event/{eventID}/featured", handlers.eventHandler.toggleFeatured())
		r.Patch("/event/{eventID}/published", handlers.eventHandler.togglePublished())

		// Tag endpoints
		r.Get("/tags", handlers.tagHandler.getAllTags())
		r.Post("/tag", handlers.tagHandler.createTag())
		r.Put("/tag/{tagID}", handlers.tagHandler.updateTag())
		r.Delete("/tag/{tagID}", handlers.tagHandler.deleteTag())

		// Job endpoints
		r.Get("/jobs", handlers.jobHandler.getAllJobs())
		r.Get("/job/{jobID}", handlers.jobHandler.getJob())
		r.Post("/job", handlers.jobHandler.createJob())
		r.Put("/job/{jobID}", handlers.jobHandler.updateJob())
		r.Delete("/job/{jobID}", handlers.jobHandler.deleteJob())

		// Service endpoints
		r.Post("/service", handlers.serviceHandler.createService())
		r.Put("/service/{serviceID}", handlers.serviceHandler.updateService())
		r.Delete("/service/{serviceID}", handlers.serviceHandler.deleteService())

		// Team member endpoints
		r.Post("/team-member", handlers.teamHandler.createTeamMember())
		r.Put("/team-member/{memberID}", handlers.teamHandler.updateTeamMember())
		r.Delete("/team-member/{memberID}", handlers.teamHandler.deleteTeamMember())

		// Partner, hall of fame and success story endpoints
		r.Post("/partner", handlers.partnerHandler.createPartner())
		r.Put("/partner/{partnerID}", handlers.partnerHandler.updatePartner())
		r.Delete("/partner/{partnerID}", handlers.partnerHandler.deletePartner())
		r.Post("/hall-of-fame", handlers.partnerHandler.createHallOfFame())
		r.Put("/hall-of-fame/{entryID}", handlers.partnerHandler.updateHallOfFame())
		r.Delete("/hall-of-fame/{entryID}", handlers.partnerHandler.deleteHallOfFame())
		r.Post("/success-story", handlers.partnerHandler.createSuccessStory())
		r.Put("/success-story/{storyID}", handlers.partnerHandler.updateSuccessStory())
		r.Delete("/success-story/{storyID}", handlers.partnerHandler.deleteSuccessStory())

		// Subscriber endpoints
		r.Get("/subscribers", handlers.subscriberHandler.getAllSubscribers())
		r.Put("/subscriber/{subscriberID}", handlers.subscriberHandler.updateSubscriber())
		r.Delete("/subscriber/{subscriberID}", handlers.subscriberHandler.deleteSubscriber())

		// Media endpoints
		r.Get("/media", handlers.mediaHandler.getAllMedia())
		r.Post("/media", handlers.mediaHandler.createMedia())
		r.Put("/media/{mediaID}", handlers.mediaHandler.updateMedia())
		r.Delete("/media/{mediaID}", handlers.mediaHandler.deleteMedia())
		r.Post("/upload", handlers.mediaHandler.uploadImage())

		// Comment moderation endpoints
		r.Get("/article/{articleID}/comments", handlers.commentHandler.getAllComments())
		r.Patch("/comment/{commentID}/approved", handlers.commentHandler.setApproved())
		r.Delete("/comment/{commentID}", handlers.commentHandler.deleteComment())

		// Contact message endpoints
		r.Get("/contact-messages", handlers.contactHandler.getAllContactMessages())
		r.Patch("/contact-message/{messageID}/read", handlers.contactHandler.markRead())
		r.Delete("/contact-message/{messageID}", handlers.contactHandler.deleteContactMessage())
	})
}
