package services

// ServiceContainer bundles every service for wiring in app.Run.
type ServiceContainer struct {
	AuthService   AuthService
	UserService   UserService
	JobService    JobService
	ReviewService ReviewService
}
