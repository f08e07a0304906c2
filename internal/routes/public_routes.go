package routes

import (
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the routes that require no authentication:
// the public browsing endpoints, application submission, receipts, login and
// the realtime change feed.
func RegisterPublicRoutes(r *gin.Engine, h Handlers) {
	r.POST("/auth/login", h.Auth.Login)

	public := r.Group("/api/public")
	{
		public.GET("/categories", h.Categories.ListPublic)
		public.GET("/panchayaths", h.Panchayaths.ListGrouped)
		public.POST("/registrations", h.Registrations.Create)
		public.GET("/registrations/:id/receipt", h.Registrations.Receipt)
	}

	// Change notifications are a read-only "something changed" feed, safe to
	// expose to the public pages that re-fetch category listings.
	r.GET("/api/realtime/ws", h.Realtime.Subscribe)
}
