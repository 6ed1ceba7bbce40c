package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/shopconfig"
)

type sentNotification struct {
	kind   notify.Kind
	phone  string
	reason string
	ctxErr error
}

type fakeNotifier struct {
	mu   sync.Mutex
	ok   bool
	sent []sentNotification
}

func (n *fakeNotifier) record(ctx context.Context, kind notify.Kind, d notify.Details, reason string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{kind: kind, phone: d.Phone, reason: reason, ctxErr: ctx.Err()})
	return n.ok
}

func (n *fakeNotifier) RequestReceived(ctx context.Context, d notify.Details) bool {
	return n.record(ctx, notify.KindRequestReceived, d, "")
}

func (n *fakeNotifier) Confirmed(ctx context.Context, d notify.Details) bool {
	return n.record(ctx, notify.KindConfirmed, d, "")
}

func (n *fakeNotifier) Rejected(ctx context.Context, d notify.Details, reason string) bool {
	return n.record(ctx, notify.KindRejected, d, reason)
}

func (n *fakeNotifier) Cancelled(ctx context.Context, d notify.Details, reason string) bool {
	return n.record(ctx, notify.KindCancelled, d, reason)
}

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func newSchedule() *domain.Schedule {
	return domain.NewSchedule(shopconfig.Default)
}

func seed(t *testing.T, store *memstore.Store, phone string, start time.Time, minutes int, status domain.Status) *models.Appointment {
	t.Helper()
	ap := &models.Appointment{
		StartAt:         start,
		EndAt:           start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
		Services:        []string{"haircut"},
		CustomerName:    "Bestand",
		CustomerPhone:   phone,
		Status:          string(status),
	}
	require.NoError(t, store.CreateAppointment(context.Background(), ap, time.Time{}))
	return ap
}
