package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler   *AuthHandler
	UserHandler   *UserHandler
	JobHandler    *JobHandler
	ReviewHandler *ReviewHandler
}
