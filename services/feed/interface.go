package feed

import (
	"context"

	"medibook/models"
)

// DoctorLister is the backend surface the doctor feed depends on.
type DoctorLister interface {
	ListDoctors(ctx context.Context, page, size int) (*models.DoctorPage, error)
}
