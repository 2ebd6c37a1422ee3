package session

import (
	"net/http"
	"time"

	"PaymentGatewayPractice/pkg/correlation"

	"github.com/gin-gonic/gin"
)

const CookieName = "pgp_session"

const ginKey = "checkout_session"

// Middleware attaches the browser's session to the gin context, starting a
// new one when the cookie is missing or has expired server-side.
func Middleware(store *Store, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(CookieName)
		sess, _ := store.GetOrCreate(id)

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CookieName, sess.ID, int(ttl.Seconds()), "/", "", secure, true)

		c.Set(ginKey, sess)
		c.Request = c.Request.WithContext(correlation.WithSession(c.Request.Context(), sess.ID))

		c.Next()
	}
}

// From returns the session attached by Middleware.
func From(c *gin.Context) *Session {
	return c.MustGet(ginKey).(*Session)
}
