package booking

import (
	"context"
	"fmt"

	"medibook/models"

	"go.uber.org/zap"
)

// DetailLoader fetches a single doctor's profile and availability map.
// It is stateless; every load replaces the previous detail wholesale.
type DetailLoader struct {
	api    DoctorAPI
	logger *zap.Logger
}

// NewDetailLoader creates a detail loader over the given backend surface.
func NewDetailLoader(doctorAPI DoctorAPI, logger *zap.Logger) *DetailLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetailLoader{api: doctorAPI, logger: logger}
}

// Load fetches the doctor's full detail. Retrying after a failure is the
// caller's decision.
func (l *DetailLoader) Load(ctx context.Context, doctorID string) (*models.DoctorDetail, error) {
	detail, err := l.api.GetDoctor(ctx, doctorID)
	if err != nil {
		l.logger.Warn("failed to load doctor detail", zap.String("doctorID", doctorID), zap.Error(err))
		return nil, fmt.Errorf("failed to load doctor %s: %w", doctorID, err)
	}
	return detail, nil
}
