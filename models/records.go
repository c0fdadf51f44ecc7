package models

// Appointment is one entry of the patient's appointment history.
type Appointment struct {
	ID         string `json:"id"`
	DoctorID   string `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"` // "confirmed", "completed", "cancelled"
}

// Prescription is one entry of the patient's prescription history.
type Prescription struct {
	ID          string   `json:"id"`
	DoctorName  string   `json:"doctorName"`
	IssuedAt    string   `json:"issuedAt"`
	Medications []string `json:"medications"`
	Notes       string   `json:"notes,omitempty"`
}
