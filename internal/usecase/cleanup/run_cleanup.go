package cleanup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

const (
	CategoryPastAppointments     = "past_appointments"
	CategoryTerminalAppointments = "terminal_appointments"
	CategoryPastBlockedTimes     = "past_blocked_times"
)

// Archiver keeps a copy of deleted rows. Archive failures never stop a deletion.
type Archiver interface {
	Enabled() bool
	Archive(ctx context.Context, category string, runAt time.Time, records any) error
}

type Result struct {
	PastAppointments     int       `json:"pastAppointments"`
	TerminalAppointments int       `json:"terminalAppointments"`
	PastBlockedTimes     int       `json:"pastBlockedTimes"`
	Cutoff               time.Time `json:"-"`
}

func (r Result) Total() int {
	return r.PastAppointments + r.TerminalAppointments + r.PastBlockedTimes
}

type RunCleanup struct {
	repo     domain.CleanupRepository
	archiver Archiver
	audit    *audit.Dispatcher
	metrics  *metrics.BookingMetrics
	logger   *logging.Logger
	loc      *time.Location
	now      timezone.Clock
}

func NewRunCleanup(
	repo domain.CleanupRepository,
	archiver Archiver,
	audit *audit.Dispatcher,
	m *metrics.BookingMetrics,
	logger *logging.Logger,
	loc *time.Location,
) *RunCleanup {
	if logger == nil {
		logger = logging.Default()
	}
	if loc == nil {
		loc = timezone.Business()
	}
	return &RunCleanup{
		repo:     repo,
		archiver: archiver,
		audit:    audit,
		metrics:  m,
		logger:   logger,
		loc:      loc,
		now:      timezone.Now,
	}
}

func (uc *RunCleanup) WithClock(clock timezone.Clock) *RunCleanup {
	uc.now = clock
	return uc
}

// Execute runs three independent deletions. A failing category does not stop
// the others; its error is joined into the returned error next to the counts
// that did succeed.
func (uc *RunCleanup) Execute(ctx context.Context) (Result, error) {
	runAt := uc.now()
	cutoff := timezone.StartOfDay(runAt, uc.loc)
	res := Result{Cutoff: cutoff}

	var errs []error

	// ----------------------------------------------
	// 1️⃣ Appointments that started before today
	// ----------------------------------------------
	past, err := uc.repo.DeleteAppointmentsStartingBefore(ctx, cutoff)
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", CategoryPastAppointments, err))
	} else {
		res.PastAppointments = len(past)
		uc.archive(ctx, CategoryPastAppointments, runAt, past, len(past))
	}

	// ----------------------------------------------
	// 2️⃣ Rejected / cancelled, regardless of date
	// ----------------------------------------------
	terminal, err := uc.repo.DeleteAppointmentsWithStatus(ctx, domain.TerminalStatuses)
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", CategoryTerminalAppointments, err))
	} else {
		res.TerminalAppointments = len(terminal)
		uc.archive(ctx, CategoryTerminalAppointments, runAt, terminal, len(terminal))
	}

	// ----------------------------------------------
	// 3️⃣ Blocks that ended before today
	// ----------------------------------------------
	blocks, err := uc.repo.DeleteBlockedTimesEndingBefore(ctx, cutoff)
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", CategoryPastBlockedTimes, err))
	} else {
		res.PastBlockedTimes = len(blocks)
		uc.archive(ctx, CategoryPastBlockedTimes, runAt, blocks, len(blocks))
	}

	uc.metrics.ObserveCleanup(CategoryPastAppointments, res.PastAppointments)
	uc.metrics.ObserveCleanup(CategoryTerminalAppointments, res.TerminalAppointments)
	uc.metrics.ObserveCleanup(CategoryPastBlockedTimes, res.PastBlockedTimes)

	uc.logger.Info("cleanup finished",
		"cutoff", cutoff.Format(time.RFC3339),
		"past_appointments", res.PastAppointments,
		"terminal_appointments", res.TerminalAppointments,
		"past_blocked_times", res.PastBlockedTimes,
		"failed_categories", len(errs),
	)

	uc.audit.Dispatch(audit.Event{
		Action: "cleanup_completed",
		Entity: "cleanup",
		Metadata: map[string]any{
			"past_appointments":     res.PastAppointments,
			"terminal_appointments": res.TerminalAppointments,
			"past_blocked_times":    res.PastBlockedTimes,
		},
	})

	return res, errors.Join(errs...)
}

func (uc *RunCleanup) archive(ctx context.Context, category string, runAt time.Time, records any, n int) {
	if n == 0 || uc.archiver == nil || !uc.archiver.Enabled() {
		return
	}
	if err := uc.archiver.Archive(ctx, category, runAt, records); err != nil {
		uc.logger.Warn("cleanup archive failed", "category", category, "error", err)
	}
}
