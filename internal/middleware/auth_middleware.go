package middleware

import (
	"net/http"

	"booking_backend/internal/session"
	"booking_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	LoginPath        = "/admin/login"
	LoginRequiredMsg = "Please log in to access the admin panel."
)

// RequireAdmin lets the request through only when the session carries the admin flag.
// Anonymous clients get a flash notice and a redirect to the login page; nothing downstream runs.
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.FromContext(c)
		if sess.IsAdmin() {
			c.Next()
			return
		}

		sess.AddFlash(LoginRequiredMsg)
		if err := sessions.Save(c, sess); err != nil {
			utils.LogError(err, "RequireAdmin: failed to save session")
		}
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
	}
}
