package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

type requestFixture struct {
	store    *memstore.Store
	notifier *fakeNotifier
	uc       *RequestAppointment
	now      time.Time
	monday   time.Time
}

func newRequestFixture(t *testing.T, repo domain.Repository) *requestFixture {
	t.Helper()
	loc := berlin(t)
	store := memstore.New()
	if repo == nil {
		repo = store
	}
	notifier := &fakeNotifier{ok: true}
	now := time.Date(2026, time.October, 15, 10, 0, 0, 0, loc)

	uc := NewRequestAppointment(repo, newSchedule(), notifier, nil, nil, logging.Discard()).
		WithClock(fixedClock(now))

	return &requestFixture{
		store:    store,
		notifier: notifier,
		uc:       uc,
		now:      now,
		monday:   time.Date(2026, time.October, 19, 0, 0, 0, 0, loc),
	}
}

func bookingAt(start time.Time, phone string, services ...string) validators.BookingRequest {
	if len(services) == 0 {
		services = []string{"haircut"}
	}
	return validators.BookingRequest{
		StartAt:       start.UTC().Format(time.RFC3339),
		CustomerName:  "Jonas Becker",
		CustomerPhone: phone,
		Services:      services,
	}
}

func TestRequestAppointmentCreatesPending(t *testing.T) {
	f := newRequestFixture(t, nil)
	start := f.monday.Add(10 * time.Hour)

	ap, err := f.uc.Execute(context.Background(), bookingAt(start, "0151 2345678", "haircut", "beard", "wash", "styling"))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, "+491512345678", ap.CustomerPhone)
	assert.True(t, ap.StartAt.Equal(start))
	assert.Equal(t, 75*time.Minute, ap.EndAt.Sub(ap.StartAt))
	assert.Equal(t, 75, ap.DurationMinutes)
	assert.Equal(t, 0, ap.BufferMinutes)

	stored, err := f.store.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, ap.CustomerName, stored.CustomerName)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, notify.KindRequestReceived, f.notifier.sent[0].kind)
	assert.Equal(t, "+491512345678", f.notifier.sent[0].phone)
}

func TestRequestAppointmentSurvivesNotificationFailure(t *testing.T) {
	f := newRequestFixture(t, nil)
	f.notifier.ok = false

	ap, err := f.uc.Execute(context.Background(), bookingAt(f.monday.Add(10*time.Hour), "015123456789"))
	require.NoError(t, err)
	assert.NotNil(t, ap)
	assert.Len(t, f.notifier.sent, 1)
}

func TestRequestAppointmentRejectsInvalidPayload(t *testing.T) {
	f := newRequestFixture(t, nil)

	_, err := f.uc.Execute(context.Background(), validators.BookingRequest{CustomerName: "J"})
	ve, ok := validators.AsValidation(err)
	require.True(t, ok)
	assert.NotEmpty(t, ve.Issues)
	assert.Empty(t, f.notifier.sent)
}

func TestRequestAppointmentEnforcesBookingWindow(t *testing.T) {
	f := newRequestFixture(t, nil)

	for _, start := range []time.Time{
		f.now,
		f.now.Add(-time.Hour),
		f.now.AddDate(0, 0, 21),
		f.now.AddDate(0, 0, 30),
	} {
		_, err := f.uc.Execute(context.Background(), bookingAt(start, "015123456789"))
		assert.True(t, httperr.IsBusiness(err, CodeOutsideBookingWindow), start.String())
	}
}

func TestRequestAppointmentDuplicateActiveBooking(t *testing.T) {
	f := newRequestFixture(t, nil)
	existing := seed(t, f.store, "+491512345678", f.monday.Add(9*time.Hour), 60, domain.StatusPending)

	// a different, free time on another day
	_, err := f.uc.Execute(context.Background(), bookingAt(f.monday.AddDate(0, 0, 2).Add(14*time.Hour), "0151 2345678"))
	require.Error(t, err)

	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, CodeDuplicateActiveBooking, be.Code)
	assert.Equal(t, existing.ID.String(), be.Meta["id"])
	assert.Equal(t, domain.FormatInstant(existing.StartAt), be.Meta["startAt"])
	assert.Empty(t, f.notifier.sent)
}

func TestRequestAppointmentPastActiveBookingDoesNotCountAsDuplicate(t *testing.T) {
	f := newRequestFixture(t, nil)
	noon := f.monday.Add(12 * time.Hour)
	f.uc.WithClock(fixedClock(noon))

	// this morning's appointment is over and cleanup has not run yet
	seed(t, f.store, "+491512345678", f.monday.Add(9*time.Hour), 60, domain.StatusConfirmed)

	ap, err := f.uc.Execute(context.Background(), bookingAt(f.monday.Add(15*time.Hour), "0151 2345678"))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, "+491512345678", ap.CustomerPhone)

	// the new one is upcoming, so a third request is a duplicate of it
	_, err = f.uc.Execute(context.Background(), bookingAt(f.monday.Add(17*time.Hour), "0151 2345678"))
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, CodeDuplicateActiveBooking, be.Code)
	assert.Equal(t, ap.ID.String(), be.Meta["id"])
}

// cancelOnInsert simulates a client that hangs up right after the row is written.
type cancelOnInsert struct {
	*memstore.Store
	cancel context.CancelFunc
}

func (r *cancelOnInsert) CreateAppointment(ctx context.Context, ap *models.Appointment, activeAfter time.Time) error {
	err := r.Store.CreateAppointment(ctx, ap, activeAfter)
	r.cancel()
	return err
}

func TestRequestAppointmentNotifiesAfterClientDisconnect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := newRequestFixture(t, &cancelOnInsert{Store: memstore.New(), cancel: cancel})

	_, err := f.uc.Execute(ctx, bookingAt(f.monday.Add(10*time.Hour), "015123456789"))
	require.NoError(t, err)

	require.Len(t, f.notifier.sent, 1)
	assert.NoError(t, f.notifier.sent[0].ctxErr)
}

func TestRequestAppointmentSlotTaken(t *testing.T) {
	f := newRequestFixture(t, nil)
	seed(t, f.store, "+49170000000", f.monday.Add(10*time.Hour), 60, domain.StatusConfirmed)

	_, err := f.uc.Execute(context.Background(), bookingAt(f.monday.Add(9*time.Hour+15*time.Minute), "015123456789"))
	assert.True(t, httperr.IsBusiness(err, CodeSlotUnavailable))

	// touching the existing appointment is fine
	_, err = f.uc.Execute(context.Background(), bookingAt(f.monday.Add(9*time.Hour), "015123456789"))
	assert.NoError(t, err)
}

// racingRepo passes every pre-check and then loses at insert time.
type racingRepo struct {
	*memstore.Store
	createErr error
	existing  *models.Appointment
	lookups   int
}

func (r *racingRepo) HasOverlap(ctx context.Context, start, end time.Time) (bool, error) {
	return false, nil
}

// FindActiveByPhone finds nothing on the pre-check and the winner afterwards.
func (r *racingRepo) FindActiveByPhone(ctx context.Context, phone string, after time.Time) (*models.Appointment, error) {
	r.lookups++
	if r.lookups > 1 {
		return r.existing, nil
	}
	return nil, nil
}

func (r *racingRepo) CreateAppointment(ctx context.Context, ap *models.Appointment, activeAfter time.Time) error {
	return r.createErr
}

func TestRequestAppointmentTranslatesStorageConflicts(t *testing.T) {
	existing := &models.Appointment{StartAt: time.Date(2026, time.October, 20, 8, 0, 0, 0, time.UTC)}

	tests := []struct {
		name     string
		repo     *racingRepo
		wantCode string
		wantID   bool
	}{
		{"exclusion", &racingRepo{Store: memstore.New(), createErr: domain.ErrSlotTaken}, CodeSlotUnavailable, false},
		{"phone taken concurrently", &racingRepo{Store: memstore.New(), createErr: domain.ErrActiveBookingExists, existing: existing}, CodeDuplicateActiveBooking, true},
		{"phone taken, row gone", &racingRepo{Store: memstore.New(), createErr: domain.ErrActiveBookingExists}, CodeDuplicateActiveBooking, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRequestFixture(t, tt.repo)

			_, err := f.uc.Execute(context.Background(), bookingAt(f.monday.Add(10*time.Hour), "015123456789"))
			be, ok := httperr.AsBusiness(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, be.Code)
			_, hasID := be.Meta["id"]
			assert.Equal(t, tt.wantID, hasID)
			assert.Empty(t, f.notifier.sent)
		})
	}
}

func TestRequestAppointmentStorageFailure(t *testing.T) {
	repo := &racingRepo{Store: memstore.New(), createErr: errors.New("connection reset")}
	f := newRequestFixture(t, repo)

	_, err := f.uc.Execute(context.Background(), bookingAt(f.monday.Add(10*time.Hour), "015123456789"))
	require.Error(t, err)
	_, isBusiness := httperr.AsBusiness(err)
	assert.False(t, isBusiness)
	assert.Empty(t, f.notifier.sent)
}
