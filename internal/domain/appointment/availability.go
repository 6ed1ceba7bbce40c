package appointment

import "time"

type SlotStatus string

const (
	SlotFree     SlotStatus = "free"
	SlotReserved SlotStatus = "reserved"
	SlotBlocked  SlotStatus = "blocked"
)

type AvailabilityInput struct {
	From time.Time
	To   time.Time
	// Duration overrides the default total used for the overlap test.
	Duration time.Duration
}

type TimeSlot struct {
	Time      string     `json:"time"`
	Available bool       `json:"available"`
	Status    SlotStatus `json:"status"`
}

// Interval is a half-open [Start, End) range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [s1,e1) and [s2,e2) intersect. Touching intervals do not.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

func (i Interval) Overlaps(o Interval) bool {
	return Overlaps(i.Start, i.End, o.Start, o.End)
}

// ClassifySlot applies the precedence past > reserved > blocked > free.
func ClassifySlot(slot Interval, now time.Time, appointments, blocked []Interval) SlotStatus {
	if slot.Start.Before(now) {
		return SlotBlocked
	}
	for _, ap := range appointments {
		if slot.Overlaps(ap) {
			return SlotReserved
		}
	}
	for _, b := range blocked {
		if slot.Overlaps(b) {
			return SlotBlocked
		}
	}
	return SlotFree
}

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// FormatInstant renders t as ISO-8601 UTC with milliseconds.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(isoMillis)
}
