package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	CodeInvalidRange = "invalid_range"
	CodeRangeTooLong = "range_too_long"
)

type GetAvailability struct {
	repo     domain.Repository
	blocked  domain.BlockedTimeRepository
	schedule *domain.Schedule
	now      timezone.Clock
}

func NewGetAvailability(
	repo domain.Repository,
	blocked domain.BlockedTimeRepository,
	schedule *domain.Schedule,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		blocked:  blocked,
		schedule: schedule,
		now:      timezone.Now,
	}
}

func (uc *GetAvailability) WithClock(clock timezone.Clock) *GetAvailability {
	uc.now = clock
	return uc
}

// MaxDays is the widest range a single query may cover: today through the
// last bookable day.
func (uc *GetAvailability) MaxDays() int {
	return uc.schedule.Config().BookingWindowDays + 1
}

// Execute returns the classified slots of every day in [in.From, in.To],
// keyed by YYYY-MM-DD.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (map[string][]domain.TimeSlot, error) {

	loc := uc.schedule.Location()

	// ----------------------------------------------
	// 1️⃣ Range
	// ----------------------------------------------
	rangeStart := timezone.StartOfDay(in.From, loc)
	lastDay := timezone.StartOfDay(in.To, loc)
	if lastDay.Before(rangeStart) {
		return nil, httperr.ErrBusiness(CodeInvalidRange)
	}
	rangeEnd := lastDay.AddDate(0, 0, 1)

	days := 0
	for d := rangeStart; d.Before(rangeEnd); d = d.AddDate(0, 0, 1) {
		days++
	}
	if days > uc.MaxDays() {
		return nil, httperr.ErrBusiness(CodeRangeTooLong)
	}

	// ----------------------------------------------
	// 2️⃣ One query each for appointments and blocks
	// ----------------------------------------------
	appointments, err := uc.repo.ListActiveInRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	blockedTimes, err := uc.blocked.ListBlockedOverlapping(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(appointments))
	for _, ap := range appointments {
		busy = append(busy, domain.Interval{Start: ap.StartAt, End: ap.EndAt})
	}

	blocked := make([]domain.Interval, 0, len(blockedTimes))
	for _, b := range blockedTimes {
		blocked = append(blocked, domain.Interval{Start: b.StartAt, End: b.EndAt})
	}

	// ----------------------------------------------
	// 3️⃣ Classify each slot
	// ----------------------------------------------
	length := in.Duration
	if length <= 0 {
		length = uc.schedule.CalculateDuration(1).Total()
	}

	now := uc.now()
	result := make(map[string][]domain.TimeSlot, days)

	for d := rangeStart; d.Before(rangeEnd); d = d.AddDate(0, 0, 1) {
		starts := uc.schedule.GenerateDaySlots(d)
		slots := make([]domain.TimeSlot, 0, len(starts))

		for _, start := range starts {
			status := domain.ClassifySlot(
				domain.Interval{Start: start, End: start.Add(length)},
				now,
				busy,
				blocked,
			)
			slots = append(slots, domain.TimeSlot{
				Time:      domain.FormatInstant(start),
				Available: status == domain.SlotFree,
				Status:    status,
			})
		}

		result[timezone.FormatDate(d, loc)] = slots
	}

	return result, nil
}

// DefaultRange is today through the end of the booking window.
func (uc *GetAvailability) DefaultRange() (time.Time, time.Time) {
	today := timezone.StartOfDay(uc.now(), uc.schedule.Location())
	return today, today.AddDate(0, 0, uc.schedule.Config().BookingWindowDays)
}
