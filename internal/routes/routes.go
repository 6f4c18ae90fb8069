package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/handlers"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/middleware"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services"
)

// RegisterRoutes wires every HTTP route.
//
// Method & path table (auth = bearer user id):
//
//	POST   /auth/register, /register   -            create account
//	POST   /auth/login,    /login      -            issue token
//	GET    /users                      -            list users
//	GET    /users/:id                  -            one user
//	GET    /users/:id/jobs             -            user's postings
//	POST   /jobs                       auth         create posting
//	GET    /jobs                       -            list postings
//	GET    /jobs/:id                   -            one posting
//	PUT    /jobs/:id                   auth         update posting
//	DELETE /jobs/:id                   auth         delete posting
//	POST   /jobs/:id/reviews           auth         create review
//	GET    /jobs/:id/reviews           -            list reviews
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authService services.AuthService,
) {
	authMW := middleware.AuthMiddleware(authService)

	root := ginRouter.Group("/")
	{
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.UserHandler.RegisterRoutes(root)
		appHandlers.JobHandler.RegisterRoutes(root, authMW)
		appHandlers.ReviewHandler.RegisterRoutes(root, authMW)
	}

	ginRouter.GET("/health", handlers.HealthCheck)
}
