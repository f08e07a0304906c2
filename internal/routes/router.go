package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pennyhelp/esep-self-employment-hub/internal/handlers"
	"github.com/pennyhelp/esep-self-employment-hub/internal/middleware"
)

// Handlers bundles the constructed handlers for route registration.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Categories    *handlers.CategoryHandler
	Panchayaths   *handlers.PanchayathHandler
	Registrations *handlers.RegistrationHandler
	Realtime      *handlers.RealtimeHandler
}

// SetupRoutes registers every route of the portal: public read endpoints,
// the login routes and the authenticated admin API.
func SetupRoutes(r *gin.Engine, h Handlers) {
	RegisterPublicRoutes(r, h)

	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired, h)
	}
}
