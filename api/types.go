package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	articleHandler    articleHandler
	eventHandler      eventHandler
	tagHandler        tagHandler
	jobHandler        jobHandler
	serviceHandler    serviceHandler
	teamHandler       teamHandler
	partnerHandler    partnerHandler
	subscriberHandler subscriberHandler
	mediaHandler      mediaHandler
	commentHandler    commentHandler
	contactHandler    contactHandler
	dashboardHandler  dashboardHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"slug"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}
