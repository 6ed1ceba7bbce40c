package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

const CodeAppointmentNotFound = "appointment_not_found"

// statusTransition is shared by confirm, reject and cancel.
type statusTransition struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher
	metrics  *metrics.BookingMetrics
	logger   *logging.Logger
}

func newStatusTransition(
	repo domain.Repository,
	notifier Notifier,
	audit *audit.Dispatcher,
	m *metrics.BookingMetrics,
	logger *logging.Logger,
) statusTransition {
	if logger == nil {
		logger = logging.Default()
	}
	return statusTransition{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		metrics:  m,
		logger:   logger,
	}
}

func (t statusTransition) run(
	ctx context.Context,
	id uuid.UUID,
	action domain.Action,
	notify func(ctx context.Context, ap *models.Appointment) bool,
	meta map[string]any,
) (*models.Appointment, error) {

	ap, err := t.apply(ctx, id, action)
	if err != nil {
		result := "error"
		if be, ok := httperr.AsBusiness(err); ok {
			result = be.Code
		}
		t.metrics.ObserveTransition(string(action), result)
		return nil, err
	}
	t.metrics.ObserveTransition(string(action), "ok")

	if !notify(context.WithoutCancel(ctx), ap) {
		t.logger.Warn("transition notification failed",
			"action", action,
			"appointment_id", ap.ID.String(),
		)
	}

	t.audit.Dispatch(audit.Event{
		Action:   auditAction(action),
		Entity:   "appointment",
		EntityID: ap.ID.String(),
		Metadata: meta,
	})

	return ap, nil
}

func (t statusTransition) apply(
	ctx context.Context,
	id uuid.UUID,
	action domain.Action,
) (*models.Appointment, error) {

	// 1️⃣ current state
	ap, err := t.load(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2️⃣ guard
	tr, _ := domain.TransitionFor(action)
	if err := domain.Apply(ap, action); err != nil {
		return nil, err
	}

	// 3️⃣ conditional write: loses cleanly against a concurrent transition
	changed, err := t.repo.TransitionStatus(ctx, id, tr.From, tr.To)
	if err != nil {
		return nil, err
	}
	if changed {
		return ap, nil
	}

	fresh, err := t.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Apply(fresh, action); err != nil {
		return nil, err
	}
	return nil, httperr.ErrBusinessWith(domain.CodeInvalidState, map[string]any{
		"action": string(action),
		"status": fresh.Status,
	})
}

func (t statusTransition) load(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, err := t.repo.GetAppointment(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness(CodeAppointmentNotFound)
	}
	if err != nil {
		return nil, err
	}
	return ap, nil
}

func auditAction(action domain.Action) string {
	switch action {
	case domain.ActionConfirm:
		return "appointment_confirmed"
	case domain.ActionReject:
		return "appointment_rejected"
	default:
		return "appointment_cancelled"
	}
}

func reasonMeta(reason string) map[string]any {
	if reason == "" {
		return nil
	}
	return map[string]any{"reason": reason}
}
