package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pennyhelp/esep-self-employment-hub/internal/handlers"
	"github.com/pennyhelp/esep-self-employment-hub/internal/middleware"
)

// RegisterAPIRoutes registers the authenticated admin API. Every mutation is
// gated by the matching permission; viewing is gated per resource group.
func RegisterAPIRoutes(api *gin.RouterGroup, h Handlers) {
	apiGroup := api.Group("/api")
	{
		apiGroup.POST("/auth/logout", h.Auth.Logout)
		apiGroup.GET("/capabilities", handlers.GetCapabilitiesHandler)

		categories := apiGroup.Group("/categories")
		categories.Use(middleware.PermissionMiddleware("categories_view"))
		{
			categories.GET("", h.Categories.List)
			categories.POST("", middleware.PermissionMiddleware("categories_create"), h.Categories.Create)
			categories.GET("/:id", h.Categories.Get)
			categories.PUT("/:id", middleware.PermissionMiddleware("categories_edit"), h.Categories.Update)
			categories.DELETE("/:id", middleware.PermissionMiddleware("categories_delete"), h.Categories.Delete)
		}

		panchayaths := apiGroup.Group("/panchayaths")
		panchayaths.Use(middleware.PermissionMiddleware("panchayaths_view"))
		{
			panchayaths.GET("", h.Panchayaths.List)
			panchayaths.POST("", middleware.PermissionMiddleware("panchayaths_create"), h.Panchayaths.Create)
			panchayaths.GET("/:id", h.Panchayaths.Get)
			panchayaths.PUT("/:id", middleware.PermissionMiddleware("panchayaths_edit"), h.Panchayaths.Update)
			panchayaths.DELETE("/:id", middleware.PermissionMiddleware("panchayaths_delete"), h.Panchayaths.Delete)
		}

		registrations := apiGroup.Group("/registrations")
		registrations.Use(middleware.PermissionMiddleware("registrations_view"))
		{
			registrations.GET("", h.Registrations.List)
			registrations.GET("/export", middleware.PermissionMiddleware("registrations_export"), h.Registrations.Export)
			registrations.GET("/:id", h.Registrations.Get)
			registrations.POST("/:id/decide", middleware.PermissionMiddleware("registrations_decide"), h.Registrations.Decide)
		}
	}
}
