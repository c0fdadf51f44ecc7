package models

// BookingRequest is the payload submitted to the booking endpoint.
type BookingRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"` // "2006-01-02"
	Time     string `json:"time" binding:"required"` // "15:04"
}

// BookingResponse is the success payload of the booking endpoint.
type BookingResponse struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}
