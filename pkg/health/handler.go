package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Register mounts /health/live and /health/ready on the given router.
func Register(r gin.IRoutes, registry *Registry, timeout time.Duration) {
	r.GET("/health/live", LivenessHandler())
	r.GET("/health/ready", ReadinessHandler(registry, timeout))
}

// LivenessHandler answers 200 as long as the process serves requests.
func LivenessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": StatusUp})
	}
}

// ReadinessHandler answers 503 while any payment provider is unusable, so a
// load balancer stops routing shoppers to a site that cannot take payments.
func ReadinessHandler(registry *Registry, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		response := registry.CheckAll(ctx)

		code := http.StatusOK
		if response.Status == StatusDown {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, response)
	}
}
