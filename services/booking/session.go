package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"medibook/api"
	"medibook/models"

	"go.uber.org/zap"
)

// Status is the lifecycle phase of one booking attempt.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// State is a snapshot of the booking state machine. Message carries the
// confirmation or failure text for the two terminal states.
type State struct {
	Status  Status
	Message string
}

// Session owns the lifecycle of a single booking attempt for one booking
// screen. It guarantees at most one request in flight and classifies
// failures into user-facing messages. Sessions are not shared across
// screens.
type Session struct {
	api       BookingAPI
	logger    *zap.Logger
	onSuccess func()

	mu     sync.Mutex
	state  State
	closed bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionLogger sets the session logger.
func WithSessionLogger(l *zap.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithOnSuccess registers a hook invoked after a confirmed booking. The
// consumer uses it to refresh the appointment list; the session itself
// only reports outcome.
func WithOnSuccess(fn func()) SessionOption {
	return func(s *Session) { s.onSuccess = fn }
}

// NewSession creates an idle booking session.
func NewSession(bookingAPI BookingAPI, opts ...SessionOption) *Session {
	s := &Session{
		api:    bookingAPI,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit sends one booking attempt for the resolved date and slot time.
// It is a no-op unless the session is idle: a second call while a request
// is in flight, or before a terminal state has been cleared, does nothing
// and reports false.
func (s *Session) Submit(ctx context.Context, doctorID string, date time.Time, slot string) bool {
	s.mu.Lock()
	if s.closed || s.state.Status != StatusIdle {
		s.mu.Unlock()
		return false
	}
	s.state = State{Status: StatusLoading}
	s.mu.Unlock()

	req := models.BookingRequest{
		DoctorID: doctorID,
		Date:     date.Format("2006-01-02"),
		Time:     slot,
	}
	s.logger.Debug("submitting booking",
		zap.String("doctorID", doctorID),
		zap.String("date", req.Date),
		zap.String("time", req.Time))

	resp, err := s.api.BookAppointment(ctx, req)

	s.mu.Lock()
	if s.closed {
		// screen is gone; drop the result instead of mutating dead state
		s.mu.Unlock()
		return true
	}
	if err != nil {
		s.state = State{Status: StatusError, Message: failureMessage(err)}
		s.logger.Warn("booking failed", zap.String("doctorID", doctorID), zap.Error(err))
		s.mu.Unlock()
		return true
	}

	message := resp.Message
	if message == "" {
		message = api.FallbackBookingSuccess
	}
	s.state = State{Status: StatusSuccess, Message: message}
	hook := s.onSuccess
	s.mu.Unlock()

	s.logger.Info("booking confirmed", zap.String("doctorID", doctorID), zap.String("date", req.Date))
	if hook != nil {
		hook()
	}
	return true
}

// Clear acknowledges a terminal state and returns the session to idle so
// the same outcome is never redisplayed. Clearing an idle session is a
// no-op; a loading session cannot be cleared.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status == StatusSuccess || s.state.Status == StatusError {
		s.state = State{}
	}
}

// Close marks the session as torn down. Any in-flight result arriving
// afterwards is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// failureMessage maps an error from the booking endpoint to the text shown
// to the patient. Structured rejections already carry a classified message;
// everything else falls back to a generic one.
func failureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return api.FallbackBookingFailure
}
