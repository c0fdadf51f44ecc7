package handlers_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"medibook/api"
	"medibook/database"
	"medibook/handlers"
	"medibook/models"
	"medibook/routes"
	"medibook/services/booking"
	"medibook/services/feed"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) *api.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := database.NewMemoryStore()
	database.Seed(store)

	router := gin.New()
	routes.RegisterRoutes(router, handlers.NewAPIHandler(store, nil))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return api.NewClient(srv.URL)
}

func TestBackendDoctorPagination(t *testing.T) {
	client := newTestBackend(t)

	first, err := client.ListDoctors(context.Background(), 0, 3)
	require.NoError(t, err)
	assert.Len(t, first.Content, 3)
	assert.False(t, first.Last)
	assert.Equal(t, 4, first.TotalElements)

	second, err := client.ListDoctors(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Len(t, second.Content, 1)
	assert.True(t, second.Last)
}

func TestBackendDoctorDetail(t *testing.T) {
	client := newTestBackend(t)

	detail, err := client.GetDoctor(context.Background(), "doc-1001")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Asha Menon", detail.Name)
	assert.NotEmpty(t, detail.Availability[models.Monday])

	_, err = client.GetDoctor(context.Background(), "doc-9999")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "Doctor not found", apiErr.Message)
}

func TestBackendBookingAndConflict(t *testing.T) {
	client := newTestBackend(t)

	// doc-1001 offers Monday 09:00-12:00; 2026-01-05 is a Monday.
	req := models.BookingRequest{DoctorID: "doc-1001", Date: "2026-01-05", Time: "09:30"}

	resp, err := client.BookAppointment(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Appointment booked successfully", resp.Message)

	// the identical slot is now taken
	_, err = client.BookAppointment(context.Background(), req)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Equal(t, "Slot no longer available", apiErr.Message)

	appointments, err := client.Appointments(context.Background())
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "confirmed", appointments[0].Status)
	assert.Equal(t, "Dr. Asha Menon", appointments[0].DoctorName)
}

func TestBackendRejectsUnofferedSlot(t *testing.T) {
	client := newTestBackend(t)

	// 2026-01-06 is a Tuesday; doc-1001 has no Tuesday availability.
	_, err := client.BookAppointment(context.Background(), models.BookingRequest{
		DoctorID: "doc-1001", Date: "2026-01-06", Time: "09:30",
	})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.StatusCode)

	// Monday, but off the 30-minute slot grid.
	_, err = client.BookAppointment(context.Background(), models.BookingRequest{
		DoctorID: "doc-1001", Date: "2026-01-05", Time: "09:45",
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.StatusCode)
}

func TestBackendPrescriptions(t *testing.T) {
	client := newTestBackend(t)

	prescriptions, err := client.Prescriptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, prescriptions, 2)
}

// The full client-side flow against the reference backend: feed pages the
// directory, the detail loader feeds the resolver, the session books a slot.
func TestPatientFlowAgainstBackend(t *testing.T) {
	client := newTestBackend(t)

	doctorFeed := feed.NewDoctorFeed(client, feed.WithPageSize(2))
	require.True(t, doctorFeed.LoadNext(context.Background()))
	require.True(t, doctorFeed.LoadNext(context.Background()))
	snap := doctorFeed.Snapshot()
	require.Len(t, snap.Doctors, 4)
	assert.True(t, snap.EndReached)

	loader := booking.NewDetailLoader(client, nil)
	detail, err := loader.Load(context.Background(), snap.Doctors[0].ID)
	require.NoError(t, err)

	resolver := booking.NewResolver(detail.Availability)
	days := resolver.Weekdays()
	require.NotEmpty(t, days)
	slots := resolver.SlotsFor(days[0])
	require.NotEmpty(t, slots)
	date, ok := resolver.NextDateFor(days[0])
	require.True(t, ok)

	session := booking.NewSession(client)
	require.True(t, session.Submit(context.Background(), detail.ID, date, slots[0]))
	state := session.State()
	assert.Equal(t, booking.StatusSuccess, state.Status)
	assert.Equal(t, "Appointment booked successfully", state.Message)
}
