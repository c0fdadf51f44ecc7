package routes

import (
	"medibook/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every reference backend endpoint.
func RegisterRoutes(r *gin.Engine, h *handlers.APIHandler) {
	api := r.Group("/api/v1")
	{
		api.GET("/doctors", h.ListDoctorsHandler)
		api.GET("/doctors/:id", h.GetDoctorHandler)
		api.POST("/bookings", h.CreateBookingHandler)
		api.GET("/appointments", h.ListAppointmentsHandler)
		api.GET("/prescriptions", h.ListPrescriptionsHandler)
	}
}
