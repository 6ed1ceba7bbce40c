package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestNewBookingDTO(t *testing.T) {
	id := uuid.New()
	start := time.Date(2026, time.October, 20, 8, 0, 0, 0, time.UTC)

	got := NewBookingDTO(models.Appointment{
		ID:      id,
		StartAt: start,
		EndAt:   start.Add(75 * time.Minute),
		Status:  "PENDING",
	})

	assert.Equal(t, BookingDTO{
		ID:       id.String(),
		StartAt:  "2026-10-20T08:00:00.000Z",
		EndAt:    "2026-10-20T09:15:00.000Z",
		Services: []string{},
		Status:   "PENDING",
	}, got)
}

func TestNewBlockedTimeDTOsNeverNil(t *testing.T) {
	assert.NotNil(t, NewBlockedTimeDTOs(nil))
	assert.NotNil(t, NewAppointmentDTOs(nil))
}
