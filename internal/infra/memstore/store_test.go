package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func at(h, m int) time.Time {
	return time.Date(2026, time.October, 20, h, m, 0, 0, time.UTC)
}

func appointment(phone string, start time.Time, status domain.Status) *models.Appointment {
	return &models.Appointment{
		StartAt:       start,
		EndAt:         start.Add(time.Hour),
		CustomerPhone: phone,
		CustomerName:  "Test",
		Services:      []string{"haircut"},
		Status:        string(status),
	}
}

func TestCreateAppointmentEnforcesConstraints(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateAppointment(ctx, appointment("+49151", at(9, 0), domain.StatusPending), time.Time{}))

	err := s.CreateAppointment(ctx, appointment("+49152", at(9, 30), domain.StatusPending), time.Time{})
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	err = s.CreateAppointment(ctx, appointment("+49151", at(12, 0), domain.StatusPending), time.Time{})
	assert.ErrorIs(t, err, domain.ErrActiveBookingExists)

	// touching intervals are fine
	assert.NoError(t, s.CreateAppointment(ctx, appointment("+49153", at(10, 0), domain.StatusPending), time.Time{}))
}

func TestCreateAppointmentIgnoresPhoneBookingsBeforeCutoff(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateAppointment(ctx, appointment("+49151", at(9, 0), domain.StatusConfirmed), time.Time{}))

	// the 09:00 appointment is over by noon
	assert.NoError(t, s.CreateAppointment(ctx, appointment("+49151", at(15, 0), domain.StatusPending), at(12, 0)))

	// the 15:00 one is still ahead
	err := s.CreateAppointment(ctx, appointment("+49151", at(17, 0), domain.StatusPending), at(12, 0))
	assert.ErrorIs(t, err, domain.ErrActiveBookingExists)
}

func TestCreateAppointmentReportsPhoneBeforeOverlap(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateAppointment(ctx, appointment("+49151", at(9, 0), domain.StatusPending), time.Time{}))

	err := s.CreateAppointment(ctx, appointment("+49151", at(9, 30), domain.StatusPending), time.Time{})
	assert.ErrorIs(t, err, domain.ErrActiveBookingExists)
}

func TestTerminalAppointmentsFreeTheSlot(t *testing.T) {
	ctx := context.Background()
	s := New()

	first := appointment("+49151", at(9, 0), domain.StatusPending)
	require.NoError(t, s.CreateAppointment(ctx, first, time.Time{}))

	changed, err := s.TransitionStatus(ctx, first.ID, []domain.Status{domain.StatusPending}, domain.StatusCancelled)
	require.NoError(t, err)
	require.True(t, changed)

	assert.NoError(t, s.CreateAppointment(ctx, appointment("+49151", at(9, 0), domain.StatusPending), time.Time{}))
}

func TestTransitionStatusRequiresExpectedStatus(t *testing.T) {
	ctx := context.Background()
	s := New()

	ap := appointment("+49151", at(9, 0), domain.StatusConfirmed)
	require.NoError(t, s.CreateAppointment(ctx, ap, time.Time{}))

	changed, err := s.TransitionStatus(ctx, ap.ID, []domain.Status{domain.StatusPending}, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = s.TransitionStatus(ctx, uuid.New(), []domain.Status{domain.StatusPending}, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestGetAppointmentReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()

	ap := appointment("+49151", at(9, 0), domain.StatusPending)
	require.NoError(t, s.CreateAppointment(ctx, ap, time.Time{}))

	got, err := s.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	got.Status = string(domain.StatusConfirmed)
	got.Services[0] = "beard"

	again, err := s.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), again.Status)
	assert.Equal(t, "haircut", again.Services[0])

	_, err = s.GetAppointment(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlockedTimeFilters(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateBlockedTime(ctx, &models.BlockedTime{StartAt: at(13, 0), EndAt: at(13, 30)}))
	require.NoError(t, s.CreateBlockedTime(ctx, &models.BlockedTime{StartAt: at(16, 0), EndAt: at(18, 0)}))

	from, to := at(12, 0), at(17, 0)
	list, err := s.ListBlockedTimes(ctx, &from, &to)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, at(13, 0), list[0].StartAt)

	overlapping, err := s.ListBlockedOverlapping(ctx, at(13, 15), at(16, 15))
	require.NoError(t, err)
	assert.Len(t, overlapping, 2)

	deleted, err := s.DeleteBlockedTime(ctx, list[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteBlockedTime(ctx, list[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
