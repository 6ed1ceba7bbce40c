package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/shopconfig"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// Schedule evaluates the shop's time rules. It is pure: every function takes
// "now" explicitly when it needs it.
type Schedule struct {
	cfg shopconfig.Config
	loc *time.Location
}

func NewSchedule(cfg shopconfig.Config) *Schedule {
	return &Schedule{
		cfg: cfg,
		loc: timezone.Location(cfg.Timezone),
	}
}

func (s *Schedule) Config() shopconfig.Config {
	return s.cfg
}

func (s *Schedule) Location() *time.Location {
	return s.loc
}

// Duration is the length of an appointment split into work and buffer.
type Duration struct {
	Duration time.Duration
	Buffer   time.Duration
}

func (d Duration) Total() time.Duration {
	return d.Duration + d.Buffer
}

// CalculateDuration picks the extended duration once serviceCount exceeds the threshold.
func (s *Schedule) CalculateDuration(serviceCount int) Duration {
	minutes := s.cfg.Durations.Default
	if serviceCount > s.cfg.Durations.ServiceThreshold {
		minutes = s.cfg.Durations.Extended
	}
	return Duration{
		Duration: time.Duration(minutes) * time.Minute,
		Buffer:   time.Duration(s.cfg.Durations.Buffer) * time.Minute,
	}
}

func (s *Schedule) EndTime(start time.Time, serviceCount int) time.Time {
	return start.Add(s.CalculateDuration(serviceCount).Total())
}

// MinimumLength is the shortest bookable appointment: default duration plus buffer.
func (s *Schedule) MinimumLength() time.Duration {
	return time.Duration(s.cfg.Durations.Default+s.cfg.Durations.Buffer) * time.Minute
}

func (s *Schedule) SlotInterval() time.Duration {
	return time.Duration(s.cfg.SlotIntervalMinutes) * time.Minute
}

// GenerateDaySlots lists slot start times for the calendar day of date.
// The last slot t satisfies t + MinimumLength() <= closing time.
func (s *Schedule) GenerateDaySlots(date time.Time) []time.Time {
	hours, ok := s.HoursOn(date)
	if !ok {
		return []time.Time{}
	}

	interval := s.SlotInterval()
	if interval <= 0 {
		return []time.Time{}
	}
	minLen := s.MinimumLength()

	slots := []time.Time{}
	for cur := hours.Start; !cur.Add(minLen).After(hours.End); cur = cur.Add(interval) {
		slots = append(slots, cur)
	}
	return slots
}

// WindowEnd is now plus the booking window, in calendar days of the business timezone.
func (s *Schedule) WindowEnd(now time.Time) time.Time {
	return now.In(s.loc).AddDate(0, 0, s.cfg.BookingWindowDays)
}

// IsWithinBookingWindow is exclusive on both ends.
func (s *Schedule) IsWithinBookingWindow(t, now time.Time) bool {
	return t.After(now) && t.Before(s.WindowEnd(now))
}
