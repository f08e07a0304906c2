package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennyhelp/esep-self-employment-hub/internal/middleware"
)

// GetCapabilitiesHandler reports the caller's write/delete capabilities on a
// resource so admin UIs can disable controls up front. The per-route
// permission gates stay authoritative regardless of what this returns.
func GetCapabilitiesHandler(c *gin.Context) {
	resource := c.Query("resource")
	if resource == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resource query parameter is required"})
		return
	}

	var roles, permissions []string
	if v, exists := c.Get("roles"); exists {
		roles, _ = v.([]string)
	}
	if v, exists := c.Get("permissions"); exists {
		permissions, _ = v.([]string)
	}

	c.JSON(http.StatusOK, middleware.CapabilitiesFor(resource, roles, permissions))
}
