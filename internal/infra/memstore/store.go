// Package memstore keeps appointments and blocked times in process memory.
// It backs the server when no DATABASE_URL is configured and mirrors the
// Postgres guards: no two overlapping active appointments and at most one
// active appointment per phone number starting after the caller's cutoff.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Store struct {
	mu           sync.Mutex
	appointments map[uuid.UUID]models.Appointment
	blocked      map[uuid.UUID]models.BlockedTime
	now          func() time.Time
}

func New() *Store {
	return &Store{
		appointments: map[uuid.UUID]models.Appointment{},
		blocked:      map[uuid.UUID]models.BlockedTime{},
		now:          time.Now,
	}
}

func isActive(status string) bool {
	return domain.Status(status).IsActive()
}

func cloneAppointment(ap models.Appointment) models.Appointment {
	ap.Services = append([]string(nil), ap.Services...)
	return ap
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *Store) CreateAppointment(ctx context.Context, ap *models.Appointment, activeAfter time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if isActive(ap.Status) {
		// phone first, then overlap: the order Postgres reports them in
		for _, other := range s.appointments {
			if isActive(other.Status) && other.CustomerPhone == ap.CustomerPhone && other.StartAt.After(activeAfter) {
				return domain.ErrActiveBookingExists
			}
		}
		for _, other := range s.appointments {
			if isActive(other.Status) && domain.Overlaps(ap.StartAt, ap.EndAt, other.StartAt, other.EndAt) {
				return domain.ErrSlotTaken
			}
		}
	}

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	now := s.now().UTC()
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = now
	}
	ap.UpdatedAt = now

	s.appointments[ap.ID] = cloneAppointment(*ap)
	return nil
}

func (s *Store) FindActiveByPhone(ctx context.Context, phone string, startsAfter time.Time) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *models.Appointment
	for _, ap := range s.appointments {
		if ap.CustomerPhone != phone || !isActive(ap.Status) || !ap.StartAt.After(startsAfter) {
			continue
		}
		if found == nil || ap.StartAt.Before(found.StartAt) {
			c := cloneAppointment(ap)
			found = &c
		}
	}
	return found, nil
}

func (s *Store) HasOverlap(ctx context.Context, start, end time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ap := range s.appointments {
		if isActive(ap.Status) && domain.Overlaps(start, end, ap.StartAt, ap.EndAt) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := cloneAppointment(ap)
	return &c, nil
}

func (s *Store) TransitionStatus(ctx context.Context, id uuid.UUID, from []domain.Status, to domain.Status) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[id]
	if !ok {
		return false, nil
	}
	for _, f := range from {
		if domain.Status(ap.Status) == f {
			ap.Status = string(to)
			ap.UpdatedAt = s.now().UTC()
			s.appointments[id] = ap
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListActiveInRange(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	return s.filterAppointments(func(ap models.Appointment) bool {
		return isActive(ap.Status) && domain.Overlaps(ap.StartAt, ap.EndAt, start, end)
	}), nil
}

func (s *Store) ListAppointments(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	return s.filterAppointments(func(ap models.Appointment) bool {
		if filter.From != nil && ap.StartAt.Before(*filter.From) {
			return false
		}
		if filter.To != nil && !ap.StartAt.Before(*filter.To) {
			return false
		}
		if filter.Status != nil && ap.Status != string(*filter.Status) {
			return false
		}
		return true
	}), nil
}

func (s *Store) filterAppointments(keep func(models.Appointment) bool) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if keep(ap) {
			out = append(out, cloneAppointment(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartAt.Before(out[j].StartAt) })
	return out
}

// --------------------------------------------------
// Blocked times
// --------------------------------------------------

func (s *Store) CreateBlockedTime(ctx context.Context, bt *models.BlockedTime) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bt.ID == uuid.Nil {
		bt.ID = uuid.New()
	}
	if bt.CreatedAt.IsZero() {
		bt.CreatedAt = s.now().UTC()
	}
	s.blocked[bt.ID] = *bt
	return nil
}

func (s *Store) ListBlockedTimes(ctx context.Context, from, to *time.Time) ([]models.BlockedTime, error) {
	return s.filterBlocked(func(bt models.BlockedTime) bool {
		if from != nil && bt.StartAt.Before(*from) {
			return false
		}
		if to != nil && bt.EndAt.After(*to) {
			return false
		}
		return true
	}), nil
}

func (s *Store) ListBlockedOverlapping(ctx context.Context, start, end time.Time) ([]models.BlockedTime, error) {
	return s.filterBlocked(func(bt models.BlockedTime) bool {
		return domain.Overlaps(bt.StartAt, bt.EndAt, start, end)
	}), nil
}

func (s *Store) DeleteBlockedTime(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blocked[id]; !ok {
		return false, nil
	}
	delete(s.blocked, id)
	return true, nil
}

func (s *Store) filterBlocked(keep func(models.BlockedTime) bool) []models.BlockedTime {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.BlockedTime{}
	for _, bt := range s.blocked {
		if keep(bt) {
			out = append(out, bt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartAt.Before(out[j].StartAt) })
	return out
}

// --------------------------------------------------
// Cleanup
// --------------------------------------------------

func (s *Store) DeleteAppointmentsStartingBefore(ctx context.Context, cutoff time.Time) ([]models.Appointment, error) {
	return s.deleteAppointments(func(ap models.Appointment) bool {
		return ap.StartAt.Before(cutoff)
	}), nil
}

func (s *Store) DeleteAppointmentsWithStatus(ctx context.Context, statuses []domain.Status) ([]models.Appointment, error) {
	return s.deleteAppointments(func(ap models.Appointment) bool {
		for _, st := range statuses {
			if ap.Status == string(st) {
				return true
			}
		}
		return false
	}), nil
}

func (s *Store) DeleteBlockedTimesEndingBefore(ctx context.Context, cutoff time.Time) ([]models.BlockedTime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := []models.BlockedTime{}
	for id, bt := range s.blocked {
		if bt.EndAt.Before(cutoff) {
			deleted = append(deleted, bt)
			delete(s.blocked, id)
		}
	}
	return deleted, nil
}

func (s *Store) deleteAppointments(match func(models.Appointment) bool) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := []models.Appointment{}
	for id, ap := range s.appointments {
		if match(ap) {
			deleted = append(deleted, ap)
			delete(s.appointments, id)
		}
	}
	return deleted
}

var (
	_ domain.Repository            = (*Store)(nil)
	_ domain.BlockedTimeRepository = (*Store)(nil)
	_ domain.CleanupRepository     = (*Store)(nil)
)
