package handlers

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// --------------------------------------------------
// Query/path parsing in the business timezone
// --------------------------------------------------

// parseDateQuery reads a YYYY-MM-DD value; empty input yields fallback.
func parseDateQuery(raw string, fallback time.Time, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	return timezone.ParseDate(raw, loc)
}

func formatDate(t time.Time, loc *time.Location) string {
	return timezone.FormatDate(t, loc)
}

func parseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
