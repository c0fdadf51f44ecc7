package booking

import (
	"time"

	"medibook/models"
)

// Resolver derives selectable weekdays, concrete calendar dates and slot
// lists from a doctor's weekly availability map. It holds no hidden state;
// date resolution is re-evaluated against the clock on every call.
type Resolver struct {
	availability models.Availability
	interval     int
	now          func() time.Time
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithInterval overrides the slot interval in minutes.
func WithInterval(minutes int) ResolverOption {
	return func(r *Resolver) { r.interval = minutes }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) { r.now = now }
}

// NewResolver wraps a doctor's availability map.
func NewResolver(availability models.Availability, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		availability: availability,
		interval:     DefaultSlotInterval,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Weekdays returns the weekdays the doctor offers, in calendar order
// starting Monday. Days absent from the availability map are never offered.
func (r *Resolver) Weekdays() []models.Weekday {
	var days []models.Weekday
	for _, day := range models.WeekOrder {
		if _, ok := r.availability[day]; ok {
			days = append(days, day)
		}
	}
	return days
}

// SlotsFor expands every window listed for the weekday, in window order.
// An absent weekday or windows with no room yield an empty list; downstream
// treats that as booking disabled, not as an error.
func (r *Resolver) SlotsFor(day models.Weekday) []string {
	var slots []string
	for _, window := range r.availability[day] {
		slots = append(slots, GenerateSlots(window.Start, window.End, r.interval)...)
	}
	return slots
}

// NextDateFor resolves the next calendar date falling on the weekday,
// counting today. Today is returned when it already matches, even if the
// day's windows have elapsed. The second return is false when the doctor
// does not offer the weekday.
func (r *Resolver) NextDateFor(day models.Weekday) (time.Time, bool) {
	if _, ok := r.availability[day]; !ok {
		return time.Time{}, false
	}
	target, ok := day.Time()
	if !ok {
		return time.Time{}, false
	}

	today := r.now()
	offset := (int(target) - int(today.Weekday()) + 7) % 7
	next := today.AddDate(0, 0, offset)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, next.Location()), true
}
