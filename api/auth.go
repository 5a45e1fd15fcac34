package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apikeyAuthentication guards a route with a static api token. An empty key
// leaves the route open.
func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
