package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"booking_backend/internal/services"
	"booking_backend/internal/session"
	"booking_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin panel. Routes must sit behind middleware.RequireAdmin.
type AdminHandler struct {
	reportService      services.ReportService
	appointmentService services.AppointmentService
	sessions           *session.Manager
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(rs services.ReportService, as services.AppointmentService, sessions *session.Manager) *AdminHandler {
	return &AdminHandler{reportService: rs, appointmentService: as, sessions: sessions}
}

// Dashboard renders every appointment with the category and month summaries.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.reportService.GetAdminDashboard(c.Request.Context())
	if err != nil {
		utils.LogError(err, "Dashboard: Error from reportService.GetAdminDashboard")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load dashboard.", "Internal error"))
		return
	}
	renderView(c, h.sessions, http.StatusOK, PageAdmin, gin.H{
		"appointments":  dashboard.Appointments,
		"category_data": dashboard.CategoryData,
		"monthly_data":  dashboard.MonthlyData,
	})
}

// DeleteAppointment removes one appointment and redirects back to the dashboard.
func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	idStr := c.Param("id")
	id, err := utils.ParseRecordID(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Appointment not found.", "id: "+idStr))
		return
	}

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Appointment not found.", err.Error()))
			return
		}
		utils.LogError(err, "DeleteAppointment: Error from appointmentService.DeleteAppointment", map[string]interface{}{"appointment_id": id})
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete appointment.", "Internal error"))
		return
	}

	session.FromContext(c).AddFlash(DeletedMsg(id))
	redirectTo(c, h.sessions, "/admin")
}

// DeletedMsg is the notice shown after appointment id is removed.
func DeletedMsg(id int64) string {
	return fmt.Sprintf("Appointment with ID %d has been deleted.", id)
}
