package booking

import (
	"context"

	"medibook/models"
)

// DoctorAPI is the backend surface the detail loader depends on.
type DoctorAPI interface {
	GetDoctor(ctx context.Context, doctorID string) (*models.DoctorDetail, error)
}

// BookingAPI is the backend surface the booking session depends on.
type BookingAPI interface {
	BookAppointment(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)
}
