package handlers

import (
	"fmt"
	"net/http"

	"booking_backend/internal/services"
	"booking_backend/internal/session"
	"booking_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Page names of the rendered views.
const (
	PageIndex      = "index"
	PageBook       = "book"
	PageAdminLogin = "admin_login"
	PageAdmin      = "admin"
)

// renderView writes view data for page. Pending flashes are consumed and included.
func renderView(c *gin.Context, sessions *session.Manager, status int, page string, payload gin.H) {
	sess := session.FromContext(c)
	body := gin.H{
		"page":    page,
		"flashes": sess.ConsumeFlashes(),
	}
	for k, v := range payload {
		body[k] = v
	}
	if err := sessions.Save(c, sess); err != nil {
		utils.LogError(err, "renderView: failed to save session", map[string]interface{}{"page": page})
	}
	c.JSON(status, body)
}

// redirectTo persists the session and answers with a 302 to path.
func redirectTo(c *gin.Context, sessions *session.Manager, path string) {
	if err := sessions.Save(c, session.FromContext(c)); err != nil {
		utils.LogError(err, "redirectTo: failed to save session", map[string]interface{}{"location": path})
	}
	c.Redirect(http.StatusFound, path)
}

// requirePostForm checks that every named field was submitted. Empty values count as present.
func requirePostForm(c *gin.Context, fields ...string) error {
	for _, field := range fields {
		if _, ok := c.GetPostForm(field); !ok {
			return fmt.Errorf("%w: %s", services.ErrMissingField, field)
		}
	}
	return nil
}

func respondMissingField(c *gin.Context, err error) {
	utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Missing required form field.", err.Error()))
}
