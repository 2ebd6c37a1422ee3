package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels requests gin could not route, keeping label
// cardinality bounded regardless of what paths clients probe.
const unmatchedRoute = "unmatched"

const providerKey = "metrics_provider"

// Provider tags every request of a route group with the payment provider
// serving it.
func Provider(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(providerKey, name)
		c.Next()
	}
}

// GinMiddleware records request latency and counts per route template and
// provider. Paths listed in skip (probes, the scrape endpoint) are not recorded.
func GinMiddleware(skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if _, ok := skipped[route]; ok {
			return
		}
		if route == "" {
			route = unmatchedRoute
		}

		labels := []string{route, c.Request.Method, strconv.Itoa(c.Writer.Status()), c.GetString(providerKey)}
		HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		HTTPRequestsTotal.WithLabelValues(labels...).Inc()
	}
}
