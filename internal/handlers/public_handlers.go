package handlers

import (
	"errors"
	"net/http"

	"booking_backend/internal/services"
	"booking_backend/internal/session"
	"booking_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const BookedMsg = "Appointment booked successfully!"

var bookingFields = []string{"name", "email", "phone", "category", "date", "time"}

// PublicHandler serves the visitor-facing pages.
type PublicHandler struct {
	bookingService services.BookingService
	sessions       *session.Manager
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(bs services.BookingService, sessions *session.Manager) *PublicHandler {
	return &PublicHandler{bookingService: bs, sessions: sessions}
}

// Index renders the landing page.
func (h *PublicHandler) Index(c *gin.Context) {
	renderView(c, h.sessions, http.StatusOK, PageIndex, nil)
}

// BookForm renders the empty booking form.
func (h *PublicHandler) BookForm(c *gin.Context) {
	renderView(c, h.sessions, http.StatusOK, PageBook, nil)
}

// Book records a submitted booking and redirects back to the form.
func (h *PublicHandler) Book(c *gin.Context) {
	if err := requirePostForm(c, bookingFields...); err != nil {
		respondMissingField(c, err)
		return
	}

	var req services.CreateAppointmentRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.LogError(err, "Book: Failed to bind form")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid form payload.", err.Error()))
		return
	}

	appointment, err := h.bookingService.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid date, expected YYYY-MM-DD.", err.Error()))
			return
		}
		utils.LogError(err, "Book: Error from bookingService.CreateAppointment")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to book appointment.", "Internal error"))
		return
	}

	utils.LogInfo("Appointment booked", map[string]interface{}{"appointment_id": appointment.ID, "category": appointment.Category})
	session.FromContext(c).AddFlash(BookedMsg)
	redirectTo(c, h.sessions, "/book")
}
