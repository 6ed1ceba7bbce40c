package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/shopconfig"
)

// OpeningHours is the wall-clock window of one business day.
type OpeningHours struct {
	Start time.Time
	End   time.Time
}

// OpeningHoursFor returns the configured hours for a weekday, or false when closed.
func (s *Schedule) OpeningHoursFor(day time.Weekday) (shopconfig.Hours, bool) {
	h := s.cfg.OpeningHours[day]
	if h == nil || h.Start == "" || h.End == "" {
		return shopconfig.Hours{}, false
	}
	return *h, true
}

// HoursOn resolves the opening hours for a calendar date into instants.
func (s *Schedule) HoursOn(date time.Time) (OpeningHours, bool) {
	y, m, d := date.In(s.loc).Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, s.loc)

	h, ok := s.OpeningHoursFor(day.Weekday())
	if !ok {
		return OpeningHours{}, false
	}

	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, s.loc), true
	}

	start, ok1 := parseHM(h.Start)
	end, ok2 := parseHM(h.End)
	if !ok1 || !ok2 || !end.After(start) {
		return OpeningHours{}, false
	}
	return OpeningHours{Start: start, End: end}, true
}
