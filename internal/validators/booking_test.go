package validators

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() BookingRequest {
	return BookingRequest{
		StartAt:       "2026-10-20T08:00:00.000Z",
		CustomerName:  "  Max Mustermann ",
		CustomerPhone: "0151 2345678",
		Services:      []string{"haircut", "beard"},
	}
}

func TestValidateBookingNormalizes(t *testing.T) {
	b, err := ValidateBooking(validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Max Mustermann", b.CustomerName)
	assert.Equal(t, "+491512345678", b.CustomerPhone)
	assert.Equal(t, []string{"haircut", "beard"}, b.Services)
	assert.True(t, b.StartAt.Equal(time.Date(2026, time.October, 20, 8, 0, 0, 0, time.UTC)))
}

func TestValidateBookingAcceptsOffsets(t *testing.T) {
	req := validRequest()
	req.StartAt = "2026-10-20T10:00:00+02:00"

	b, err := ValidateBooking(req)
	require.NoError(t, err)
	assert.True(t, b.StartAt.Equal(time.Date(2026, time.October, 20, 8, 0, 0, 0, time.UTC)))
}

func TestValidateBookingReportsEveryField(t *testing.T) {
	_, err := ValidateBooking(BookingRequest{
		StartAt:       "morgen",
		CustomerName:  " A ",
		CustomerPhone: "123",
		Services:      nil,
	})
	require.Error(t, err)

	ve, ok := AsValidation(err)
	require.True(t, ok)

	got := map[string]string{}
	for _, is := range ve.Issues {
		got[is.Field] = is.Message
	}
	assert.Equal(t, map[string]string{
		"startAt":       "Ungültiges Datum",
		"customerName":  "Name muss mindestens 2 Zeichen haben",
		"customerPhone": "Bitte gib eine gültige Telefonnummer ein",
		"services":      "Bitte wähle mindestens eine Leistung",
	}, got)
}

func TestValidateBookingLimits(t *testing.T) {
	req := validRequest()
	req.CustomerName = strings.Repeat("ä", 101)
	req.Services = make([]string, 11)
	for i := range req.Services {
		req.Services[i] = "haircut"
	}

	_, err := ValidateBooking(req)
	ve, ok := AsValidation(err)
	require.True(t, ok)
	require.Len(t, ve.Issues, 2)
	assert.Equal(t, Issue{Field: "customerName", Message: "Name darf maximal 100 Zeichen haben"}, ve.Issues[0])
	assert.Equal(t, Issue{Field: "services", Message: "Maximal 10 Leistungen möglich"}, ve.Issues[1])
}

func TestValidateBookingNameLengthCountsCharacters(t *testing.T) {
	req := validRequest()
	req.CustomerName = strings.Repeat("ü", 100)

	_, err := ValidateBooking(req)
	assert.NoError(t, err)
}

func TestValidateBookingRejectsEmptyService(t *testing.T) {
	req := validRequest()
	req.Services = []string{"haircut", ""}

	_, err := ValidateBooking(req)
	ve, ok := AsValidation(err)
	require.True(t, ok)
	require.Len(t, ve.Issues, 1)
	assert.Equal(t, "services[1]", ve.Issues[0].Field)
	assert.Equal(t, "Ungültige Leistung", ve.Issues[0].Message)
}
