package api

import (
	"context"
	"net/http"

	"medibook/models"

	"github.com/google/uuid"
)

// FallbackBookingSuccess is shown when the backend confirms a booking
// without a message of its own.
const FallbackBookingSuccess = "Appointment booked successfully"

// FallbackBookingFailure is shown when a booking rejection carries no
// usable error payload.
const FallbackBookingFailure = "Booking failed"

// BookAppointment submits one booking attempt. Each submission carries a
// fresh request id so the backend can de-duplicate replays.
func (c *Client) BookAppointment(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	var result models.BookingResponse
	err := c.doWithHeaders(ctx, http.MethodPost, "/api/v1/bookings", nil,
		map[string]string{"X-Request-ID": uuid.New().String()},
		req, &result, FallbackBookingFailure)
	if err != nil {
		return nil, err
	}
	if result.Message == "" {
		result.Message = FallbackBookingSuccess
	}
	return &result, nil
}
