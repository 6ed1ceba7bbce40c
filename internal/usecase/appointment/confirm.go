package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

type ConfirmAppointment struct {
	transition statusTransition
}

func NewConfirmAppointment(
	repo domain.Repository,
	notifier Notifier,
	audit *audit.Dispatcher,
	m *metrics.BookingMetrics,
	logger *logging.Logger,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		transition: newStatusTransition(repo, notifier, audit, m, logger),
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {
	return uc.transition.run(ctx, appointmentID, domain.ActionConfirm,
		func(ctx context.Context, ap *models.Appointment) bool {
			return uc.transition.notifier.Confirmed(ctx, detailsOf(ap))
		},
		nil,
	)
}
