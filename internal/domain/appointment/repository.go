package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Storage-level outcomes that repositories translate from their backend.
var (
	ErrNotFound            = errors.New("appointment: not found")
	ErrSlotTaken           = errors.New("appointment: slot taken")
	ErrActiveBookingExists = errors.New("appointment: active booking exists for phone")
)

type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Status *Status
}

type Repository interface {
	// -------- Appointment (create / conflict) --------

	// CreateAppointment inserts ap. An active ap fails with
	// ErrActiveBookingExists while its phone already holds an active
	// appointment starting after activeAfter; check and insert are
	// serialized per phone.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		activeAfter time.Time,
	) error

	FindActiveByPhone(
		ctx context.Context,
		phone string,
		startsAfter time.Time,
	) (*models.Appointment, error)

	HasOverlap(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	// TransitionStatus sets status to `to` only while the row is in one of
	// `from`. It reports whether a row changed.
	TransitionStatus(
		ctx context.Context,
		id uuid.UUID,
		from []Status,
		to Status,
	) (bool, error)

	// -------- Availability / listing --------
	ListActiveInRange(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}

type BlockedTimeRepository interface {
	CreateBlockedTime(
		ctx context.Context,
		bt *models.BlockedTime,
	) error

	// ListBlockedTimes returns intervals with start_at >= from and end_at <= to.
	// Nil bounds are open.
	ListBlockedTimes(
		ctx context.Context,
		from *time.Time,
		to *time.Time,
	) ([]models.BlockedTime, error)

	ListBlockedOverlapping(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.BlockedTime, error)

	DeleteBlockedTime(
		ctx context.Context,
		id uuid.UUID,
	) (bool, error)
}

// CleanupRepository deletes rows and hands back what was removed.
type CleanupRepository interface {
	DeleteAppointmentsStartingBefore(
		ctx context.Context,
		cutoff time.Time,
	) ([]models.Appointment, error)

	DeleteAppointmentsWithStatus(
		ctx context.Context,
		statuses []Status,
	) ([]models.Appointment, error)

	DeleteBlockedTimesEndingBefore(
		ctx context.Context,
		cutoff time.Time,
	) ([]models.BlockedTime, error)
}

func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
