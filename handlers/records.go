package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAppointmentsHandler serves GET /api/v1/appointments.
func (h *APIHandler) ListAppointmentsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Appointments())
}

// ListPrescriptionsHandler serves GET /api/v1/prescriptions.
func (h *APIHandler) ListPrescriptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Prescriptions())
}
