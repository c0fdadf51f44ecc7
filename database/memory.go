package database

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"medibook/models"

	"github.com/google/uuid"
)

// ErrDoctorNotFound is returned when a doctor id has no record.
var ErrDoctorNotFound = errors.New("doctor not found")

// ErrSlotTaken is returned when the requested slot is already booked.
var ErrSlotTaken = errors.New("slot no longer available")

// ErrSlotUnavailable is returned when the requested time is outside the
// doctor's availability for that weekday.
var ErrSlotUnavailable = errors.New("doctor is not available at the requested time")

// MemoryStore is the in-memory backing store of the reference backend.
// It keeps the whole dataset in process so local runs and tests need no
// external services.
type MemoryStore struct {
	mu            sync.RWMutex
	doctors       []models.DoctorDetail
	byID          map[string]models.DoctorDetail
	appointments  []models.Appointment
	prescriptions []models.Prescription
	booked        map[string]struct{} // doctorID|date|time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[string]models.DoctorDetail),
		booked: make(map[string]struct{}),
	}
}

// AddDoctor registers a doctor. Doctors are listed in insertion order.
func (s *MemoryStore) AddDoctor(doctor models.DoctorDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[doctor.ID]; exists {
		return
	}
	s.doctors = append(s.doctors, doctor)
	s.byID[doctor.ID] = doctor
}

// AddPrescription appends a prescription record.
func (s *MemoryStore) AddPrescription(p models.Prescription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prescriptions = append(s.prescriptions, p)
}

// ListDoctors returns one page of doctor summaries plus pagination metadata.
func (s *MemoryStore) ListDoctors(page, size int) models.DoctorPage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	total := len(s.doctors)
	totalPages := (total + size - 1) / size
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	content := make([]models.DoctorSummary, 0, end-start)
	for _, d := range s.doctors[start:end] {
		content = append(content, summarize(d))
	}

	return models.DoctorPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          page >= totalPages-1,
	}
}

// GetDoctor returns the full doctor record.
func (s *MemoryStore) GetDoctor(id string) (models.DoctorDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doctor, ok := s.byID[id]
	if !ok {
		return models.DoctorDetail{}, ErrDoctorNotFound
	}
	return doctor, nil
}

// CreateBooking records an appointment if the doctor offers the slot and it
// is still free. The same doctor/date/time can be booked exactly once.
func (s *MemoryStore) CreateBooking(req models.BookingRequest, weekday models.Weekday, slotOffered bool) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doctor, ok := s.byID[req.DoctorID]
	if !ok {
		return models.Appointment{}, ErrDoctorNotFound
	}
	if _, offered := doctor.Availability[weekday]; !offered || !slotOffered {
		return models.Appointment{}, ErrSlotUnavailable
	}

	key := fmt.Sprintf("%s|%s|%s", req.DoctorID, req.Date, req.Time)
	if _, taken := s.booked[key]; taken {
		return models.Appointment{}, ErrSlotTaken
	}
	s.booked[key] = struct{}{}

	appointment := models.Appointment{
		ID:         uuid.New().String(),
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Date:       req.Date,
		Time:       req.Time,
		Status:     "confirmed",
	}
	s.appointments = append(s.appointments, appointment)
	return appointment, nil
}

// Appointments returns the booked appointments, most recent date first.
func (s *MemoryStore) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date == out[j].Date {
			return out[i].Time > out[j].Time
		}
		return out[i].Date > out[j].Date
	})
	return out
}

// Prescriptions returns the prescription history.
func (s *MemoryStore) Prescriptions() []models.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Prescription, len(s.prescriptions))
	copy(out, s.prescriptions)
	return out
}

func summarize(d models.DoctorDetail) models.DoctorSummary {
	summary := models.DoctorSummary{
		ID:              d.ID,
		Name:            d.Name,
		Specialization:  d.Specialization,
		ExperienceYears: d.ExperienceYears,
		ConsultationFee: d.ConsultationFee,
		Rating:          d.Rating,
	}
	for _, day := range models.WeekOrder {
		if windows, ok := d.Availability[day]; ok && len(windows) > 0 {
			summary.NextAvailable = fmt.Sprintf("%s %s", day, windows[0].Start)
			break
		}
	}
	return summary
}
