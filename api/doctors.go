package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"medibook/models"
)

// FallbackListDoctors is shown when the doctor list cannot be fetched and
// the failure carries no usable error payload.
const FallbackListDoctors = "Failed to load doctors"

// ListDoctors fetches one page of the doctor directory.
func (c *Client) ListDoctors(ctx context.Context, page, size int) (*models.DoctorPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var result models.DoctorPage
	if err := c.do(ctx, http.MethodGet, "/api/v1/doctors", query, nil, &result, FallbackListDoctors); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDoctor fetches a single doctor's full profile including the
// weekly availability map.
func (c *Client) GetDoctor(ctx context.Context, doctorID string) (*models.DoctorDetail, error) {
	var result models.DoctorDetail
	if err := c.do(ctx, http.MethodGet, "/api/v1/doctors/"+url.PathEscape(doctorID), nil, nil, &result, "Failed to load doctor"); err != nil {
		return nil, err
	}
	return &result, nil
}
