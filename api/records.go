package api

import (
	"context"
	"net/http"

	"medibook/models"
)

// Appointments fetches the patient's appointment history.
func (c *Client) Appointments(ctx context.Context) ([]models.Appointment, error) {
	var result []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/api/v1/appointments", nil, nil, &result, "Failed to load appointments"); err != nil {
		return nil, err
	}
	return result, nil
}

// Prescriptions fetches the patient's prescription history.
func (c *Client) Prescriptions(ctx context.Context) ([]models.Prescription, error) {
	var result []models.Prescription
	if err := c.do(ctx, http.MethodGet, "/api/v1/prescriptions", nil, nil, &result, "Failed to load prescriptions"); err != nil {
		return nil, err
	}
	return result, nil
}
