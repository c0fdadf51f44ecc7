package database

import "medibook/models"

// Seed fills the store with a small clinic roster so the reference backend
// is usable immediately after start.
func Seed(store *MemoryStore) {
	store.AddDoctor(models.DoctorDetail{
		ID:              "doc-1001",
		Name:            "Dr. Asha Menon",
		Specialization:  "Cardiology",
		ExperienceYears: 14,
		ConsultationFee: 120,
		Rating:          4.8,
		About:           "Consultant cardiologist focusing on preventive care.",
		ClinicAddress:   "12 Lakeview Road, Suite 4",
		Availability: models.Availability{
			models.Monday:    {{Start: "09:00", End: "12:00"}, {Start: "14:00", End: "17:00"}},
			models.Wednesday: {{Start: "10:00", End: "13:00"}},
			models.Friday:    {{Start: "09:00", End: "11:30"}},
		},
	})
	store.AddDoctor(models.DoctorDetail{
		ID:              "doc-1002",
		Name:            "Dr. Samuel Otieno",
		Specialization:  "Dermatology",
		ExperienceYears: 9,
		ConsultationFee: 90,
		Rating:          4.5,
		About:           "Dermatologist with a special interest in pediatric skin conditions.",
		ClinicAddress:   "Greenfield Medical Plaza, 2nd floor",
		Availability: models.Availability{
			models.Tuesday:  {{Start: "08:30", End: "12:30"}},
			models.Thursday: {{Start: "13:00", End: "18:00"}},
		},
	})
	store.AddDoctor(models.DoctorDetail{
		ID:              "doc-1003",
		Name:            "Dr. Elena Petrova",
		Specialization:  "General Medicine",
		ExperienceYears: 21,
		ConsultationFee: 60,
		Rating:          4.9,
		About:           "Family physician. Walk-in consultations on weekends.",
		ClinicAddress:   "4 Harbor Street",
		Availability: models.Availability{
			models.Monday:   {{Start: "08:00", End: "16:00"}},
			models.Saturday: {{Start: "09:00", End: "13:00"}},
			models.Sunday:   {{Start: "09:00", End: "12:00"}},
		},
	})
	store.AddDoctor(models.DoctorDetail{
		ID:              "doc-1004",
		Name:            "Dr. Harpreet Kaur",
		Specialization:  "Pediatrics",
		ExperienceYears: 7,
		ConsultationFee: 75,
		Rating:          4.6,
		ClinicAddress:   "Sunrise Children's Clinic",
		Availability: models.Availability{
			models.Wednesday: {{Start: "14:00", End: "16:00"}},
			models.Friday:    {{Start: "10:00", End: "14:00"}},
		},
	})

	store.AddPrescription(models.Prescription{
		ID:          "rx-5001",
		DoctorName:  "Dr. Elena Petrova",
		IssuedAt:    "2025-11-02",
		Medications: []string{"Amoxicillin 500mg - 1 capsule three times daily for 7 days"},
		Notes:       "Finish the full course even if symptoms improve.",
	})
	store.AddPrescription(models.Prescription{
		ID:          "rx-5002",
		DoctorName:  "Dr. Asha Menon",
		IssuedAt:    "2025-12-18",
		Medications: []string{"Atorvastatin 10mg - 1 tablet at night", "Aspirin 75mg - 1 tablet daily"},
	})
}
