package handlers

import (
	"errors"
	"net/http"
	"time"

	"medibook/database"
	"medibook/models"
	"medibook/services/booking"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var timeWeekday = map[time.Weekday]models.Weekday{
	time.Monday:    models.Monday,
	time.Tuesday:   models.Tuesday,
	time.Wednesday: models.Wednesday,
	time.Thursday:  models.Thursday,
	time.Friday:    models.Friday,
	time.Saturday:  models.Saturday,
	time.Sunday:    models.Sunday,
}

// CreateBookingHandler serves POST /api/v1/bookings.
func (h *APIHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", "")
		return
	}
	weekday := timeWeekday[date.Weekday()]

	doctor, err := h.Store.GetDoctor(req.DoctorID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
		return
	}

	// The requested time must be one of the doctor's generated slots for
	// that weekday.
	offered := false
	for _, window := range doctor.Availability[weekday] {
		for _, slot := range booking.GenerateSlots(window.Start, window.End, booking.DefaultSlotInterval) {
			if slot == req.Time {
				offered = true
				break
			}
		}
	}

	appointment, err := h.Store.CreateBooking(req, weekday, offered)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrSlotTaken):
			// message-only payload; clients fall back from "error" to "message"
			utils.JSONError(c, http.StatusConflict, "", "Slot no longer available")
		case errors.Is(err, database.ErrSlotUnavailable):
			utils.JSONError(c, http.StatusUnprocessableEntity, "Doctor is not available at the requested time", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Booking failed", err.Error())
		}
		return
	}

	h.Logger.Info("appointment booked",
		zap.String("appointmentID", appointment.ID),
		zap.String("doctorID", req.DoctorID),
		zap.String("date", req.Date),
		zap.String("time", req.Time))

	c.JSON(http.StatusCreated, models.BookingResponse{
		ID:      appointment.ID,
		Message: "Appointment booked successfully",
	})
}
