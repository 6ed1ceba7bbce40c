package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

func TestListAppointmentsFilters(t *testing.T) {
	loc := berlin(t)
	store := memstore.New()

	late := seed(t, store, "+491", time.Date(2026, time.October, 20, 17, 0, 0, 0, loc), 60, domain.StatusConfirmed)
	early := seed(t, store, "+492", time.Date(2026, time.October, 20, 9, 0, 0, 0, loc), 60, domain.StatusPending)
	// 00:30 Berlin is still the 21st even though it is the 20th in UTC
	night := seed(t, store, "+493", time.Date(2026, time.October, 21, 0, 30, 0, 0, loc), 30, domain.StatusPending)
	seed(t, store, "+494", time.Date(2026, time.October, 22, 9, 0, 0, 0, loc), 60, domain.StatusRejected)

	uc := NewListAppointments(store, newSchedule())

	all, err := uc.Execute(context.Background(), ListAppointmentsInput{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, early.ID, all[0].ID)

	day, err := uc.Execute(context.Background(), ListAppointmentsInput{Date: "2026-10-20"})
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, early.ID, day[0].ID)
	assert.Equal(t, late.ID, day[1].ID)

	next, err := uc.Execute(context.Background(), ListAppointmentsInput{Date: "2026-10-21"})
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, night.ID, next[0].ID)

	pending, err := uc.Execute(context.Background(), ListAppointmentsInput{Status: "PENDING"})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	both, err := uc.Execute(context.Background(), ListAppointmentsInput{Date: "2026-10-20", Status: "CONFIRMED"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, late.ID, both[0].ID)
}

func TestListAppointmentsRejectsBadFilters(t *testing.T) {
	uc := NewListAppointments(memstore.New(), newSchedule())

	_, err := uc.Execute(context.Background(), ListAppointmentsInput{Date: "20.10.2026", Status: "DONE"})
	ve, ok := validators.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []validators.Issue{
		{Field: "date", Message: "Ungültiges Datumsformat (YYYY-MM-DD)"},
		{Field: "status", Message: "Ungültiger Status"},
	}, ve.Issues)
}
