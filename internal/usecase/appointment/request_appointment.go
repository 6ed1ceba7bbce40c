package appointment

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

var bookingTracer = otel.Tracer("barber.internal.usecase.appointment")

const (
	CodeOutsideBookingWindow   = "outside_booking_window"
	CodeDuplicateActiveBooking = "duplicate_active_booking"
	CodeSlotUnavailable        = "slot_unavailable"
)

type RequestAppointment struct {
	repo     domain.Repository
	schedule *domain.Schedule
	notifier Notifier
	audit    *audit.Dispatcher
	metrics  *metrics.BookingMetrics
	logger   *logging.Logger
	now      timezone.Clock
}

func NewRequestAppointment(
	repo domain.Repository,
	schedule *domain.Schedule,
	notifier Notifier,
	audit *audit.Dispatcher,
	m *metrics.BookingMetrics,
	logger *logging.Logger,
) *RequestAppointment {
	if logger == nil {
		logger = logging.Default()
	}
	return &RequestAppointment{
		repo:     repo,
		schedule: schedule,
		notifier: notifier,
		audit:    audit,
		metrics:  m,
		logger:   logger,
		now:      timezone.Now,
	}
}

func (uc *RequestAppointment) WithClock(clock timezone.Clock) *RequestAppointment {
	uc.now = clock
	return uc
}

func (uc *RequestAppointment) Execute(
	ctx context.Context,
	in validators.BookingRequest,
) (*models.Appointment, error) {

	ctx, span := bookingTracer.Start(ctx, "appointment.request",
		trace.WithAttributes(attribute.Int("barber.services", len(in.Services))),
	)
	defer span.End()

	ap, err := uc.execute(ctx, in)
	if err != nil {
		uc.metrics.ObserveBookingRequest(bookingResult(err))
		span.RecordError(err)
		return nil, err
	}
	uc.metrics.ObserveBookingRequest("created")
	return ap, nil
}

func (uc *RequestAppointment) execute(
	ctx context.Context,
	in validators.BookingRequest,
) (*models.Appointment, error) {

	// ----------------------------------------------
	// 1️⃣ Shape
	// ----------------------------------------------
	booking, err := validators.ValidateBooking(in)
	if err != nil {
		return nil, err
	}

	// ----------------------------------------------
	// 2️⃣ Booking window
	// ----------------------------------------------
	now := uc.now()
	if !uc.schedule.IsWithinBookingWindow(booking.StartAt, now) {
		return nil, httperr.ErrBusiness(CodeOutsideBookingWindow)
	}

	// ----------------------------------------------
	// 3️⃣ Duration
	// ----------------------------------------------
	duration := uc.schedule.CalculateDuration(len(booking.Services))
	start := booking.StartAt
	end := start.Add(duration.Total())

	// ----------------------------------------------
	// 4️⃣ One upcoming active booking per phone
	// ----------------------------------------------
	existing, err := uc.repo.FindActiveByPhone(ctx, booking.CustomerPhone, now)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, duplicateBooking(existing)
	}

	// ----------------------------------------------
	// 5️⃣ Overlap pre-check (storage constraint is authoritative)
	// ----------------------------------------------
	taken, err := uc.repo.HasOverlap(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness(CodeSlotUnavailable)
	}

	// ----------------------------------------------
	// 6️⃣ Insert
	// ----------------------------------------------
	ap := &models.Appointment{
		StartAt:         start.UTC(),
		EndAt:           end.UTC(),
		DurationMinutes: int(duration.Duration / time.Minute),
		BufferMinutes:   int(duration.Buffer / time.Minute),
		Services:        booking.Services,
		CustomerName:    booking.CustomerName,
		CustomerPhone:   booking.CustomerPhone,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap, now); err != nil {
		switch {
		case errors.Is(err, domain.ErrSlotTaken):
			return nil, httperr.ErrBusiness(CodeSlotUnavailable)
		case errors.Is(err, domain.ErrActiveBookingExists):
			if other, lookupErr := uc.repo.FindActiveByPhone(ctx, booking.CustomerPhone, now); lookupErr == nil && other != nil {
				return nil, duplicateBooking(other)
			}
			return nil, httperr.ErrBusiness(CodeDuplicateActiveBooking)
		}
		return nil, err
	}

	// ----------------------------------------------
	// 7️⃣ Side effects (never fail the booking)
	// ----------------------------------------------
	// the row is committed; a client hanging up must not cancel the SMS
	if !uc.notifier.RequestReceived(context.WithoutCancel(ctx), detailsOf(ap)) {
		uc.logger.Warn("request notification failed", "appointment_id", ap.ID.String())
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_requested",
		Entity:   "appointment",
		EntityID: ap.ID.String(),
		Metadata: map[string]any{
			"start_at": domain.FormatInstant(ap.StartAt),
			"services": booking.Services,
		},
	})

	return ap, nil
}

func duplicateBooking(existing *models.Appointment) error {
	return httperr.ErrBusinessWith(CodeDuplicateActiveBooking, map[string]any{
		"id":      existing.ID.String(),
		"startAt": domain.FormatInstant(existing.StartAt),
	})
}

func bookingResult(err error) string {
	if _, ok := validators.AsValidation(err); ok {
		return "invalid"
	}
	if be, ok := httperr.AsBusiness(err); ok {
		return be.Code
	}
	return "error"
}
