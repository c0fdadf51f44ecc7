package models

// DoctorSummary is one row of the browsable doctor list.
type DoctorSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	ExperienceYears int     `json:"experienceYears"`
	ConsultationFee float64 `json:"consultationFee"`
	Rating          float64 `json:"rating,omitempty"`
	NextAvailable   string  `json:"nextAvailable,omitempty"`
}

// DoctorDetail is the full doctor profile including the weekly availability map.
type DoctorDetail struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Specialization  string       `json:"specialization"`
	ExperienceYears int          `json:"experienceYears"`
	ConsultationFee float64      `json:"consultationFee"`
	Rating          float64      `json:"rating,omitempty"`
	About           string       `json:"about,omitempty"`
	ClinicAddress   string       `json:"clinicAddress,omitempty"`
	Availability    Availability `json:"availability"`
}

// DoctorPage is one page of doctor summaries as returned by the list endpoint.
type DoctorPage struct {
	Content       []DoctorSummary `json:"content"`
	Page          int             `json:"page"`
	Size          int             `json:"size"`
	TotalElements int             `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	Last          bool            `json:"last"`
}
