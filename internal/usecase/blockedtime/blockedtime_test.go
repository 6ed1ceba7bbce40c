package blockedtime

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

func ptr(s string) *string { return &s }

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func TestCreateBlockedTime(t *testing.T) {
	store := memstore.New()

	bt, err := NewCreateBlockedTime(store, nil).Execute(context.Background(), CreateInput{
		StartAt: "2026-10-20T11:00:00.000Z",
		EndAt:   "2026-10-20T11:30:00.000Z",
		Reason:  ptr("  Mittagspause "),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, bt.ID)
	require.NotNil(t, bt.Reason)
	assert.Equal(t, "Mittagspause", *bt.Reason)

	listed, err := store.ListBlockedTimes(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, bt.ID, listed[0].ID)
}

func TestCreateBlockedTimeBlankReasonIsNil(t *testing.T) {
	bt, err := NewCreateBlockedTime(memstore.New(), nil).Execute(context.Background(), CreateInput{
		StartAt: "2026-10-20T11:00:00Z",
		EndAt:   "2026-10-20T12:00:00Z",
		Reason:  ptr("   "),
	})
	require.NoError(t, err)
	assert.Nil(t, bt.Reason)
}

func TestCreateBlockedTimeValidation(t *testing.T) {
	uc := NewCreateBlockedTime(memstore.New(), nil)

	_, err := uc.Execute(context.Background(), CreateInput{StartAt: "2026-10-20T11:00:00Z"})
	assert.True(t, httperr.IsBusiness(err, CodeMissingBounds))

	_, err = uc.Execute(context.Background(), CreateInput{StartAt: "gestern", EndAt: "2026-10-20T11:00:00Z"})
	ve, ok := validators.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "startAt", ve.Issues[0].Field)

	for _, end := range []string{"2026-10-20T11:00:00Z", "2026-10-20T10:00:00Z"} {
		_, err = uc.Execute(context.Background(), CreateInput{StartAt: "2026-10-20T11:00:00Z", EndAt: end})
		assert.True(t, httperr.IsBusiness(err, CodeInvalidRange), end)
	}
}

func TestListBlockedTimesBounds(t *testing.T) {
	loc := berlin(t)
	store := memstore.New()
	create := NewCreateBlockedTime(store, nil)

	mk := func(start, end string) {
		_, err := create.Execute(context.Background(), CreateInput{StartAt: start, EndAt: end})
		require.NoError(t, err)
	}
	mk("2026-10-19T08:00:00Z", "2026-10-19T09:00:00Z")
	mk("2026-10-20T11:00:00Z", "2026-10-20T11:30:00Z")
	mk("2026-10-20T16:00:00Z", "2026-10-21T07:00:00Z")

	uc := NewListBlockedTimes(store, loc)

	all, err := uc.Execute(context.Background(), ListInput{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// start >= from and end <= to: the overnight block is excluded
	day, err := uc.Execute(context.Background(), ListInput{From: "2026-10-20", To: "2026-10-20"})
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.True(t, day[0].StartAt.Equal(time.Date(2026, time.October, 20, 11, 0, 0, 0, time.UTC)))

	later, err := uc.Execute(context.Background(), ListInput{From: "2026-10-20T00:00:00Z"})
	require.NoError(t, err)
	assert.Len(t, later, 2)

	_, err = uc.Execute(context.Background(), ListInput{From: "bald", To: "nie"})
	ve, ok := validators.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Issues, 2)
}

func TestDeleteBlockedTime(t *testing.T) {
	store := memstore.New()
	bt, err := NewCreateBlockedTime(store, nil).Execute(context.Background(), CreateInput{
		StartAt: "2026-10-20T11:00:00Z",
		EndAt:   "2026-10-20T12:00:00Z",
	})
	require.NoError(t, err)

	uc := NewDeleteBlockedTime(store, nil)
	require.NoError(t, uc.Execute(context.Background(), bt.ID))

	err = uc.Execute(context.Background(), bt.ID)
	assert.True(t, httperr.IsBusiness(err, CodeNotFound))
}
