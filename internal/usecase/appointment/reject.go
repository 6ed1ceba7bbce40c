package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

type RejectAppointment struct {
	transition statusTransition
}

func NewRejectAppointment(
	repo domain.Repository,
	notifier Notifier,
	audit *audit.Dispatcher,
	m *metrics.BookingMetrics,
	logger *logging.Logger,
) *RejectAppointment {
	return &RejectAppointment{
		transition: newStatusTransition(repo, notifier, audit, m, logger),
	}
}

func (uc *RejectAppointment) Execute(
	ctx context.Context,
	appointmentID uuid.UUID,
	reason string,
) (*models.Appointment, error) {
	reason = strings.TrimSpace(reason)
	return uc.transition.run(ctx, appointmentID, domain.ActionReject,
		func(ctx context.Context, ap *models.Appointment) bool {
			return uc.transition.notifier.Rejected(ctx, detailsOf(ap), reason)
		},
		reasonMeta(reason),
	)
}
