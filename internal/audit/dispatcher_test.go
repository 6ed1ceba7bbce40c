package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

type memoryWriter struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (w *memoryWriter) Log(ctx context.Context, ev Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail {
		return errors.New("db down")
	}
	w.events = append(w.events, ev)
	return nil
}

func TestDispatcherDeliversEvents(t *testing.T) {
	w := &memoryWriter{}
	d := NewDispatcher(w, logging.Discard())

	d.Dispatch(Event{Action: "appointment_confirmed", Entity: "appointment", EntityID: "a1"})
	d.Dispatch(Event{Action: "blocked_time_created", Entity: "blocked_time", EntityID: "b1"})
	d.Close()

	require.Len(t, w.events, 2)
	assert.Equal(t, "appointment_confirmed", w.events[0].Action)
	assert.Equal(t, "b1", w.events[1].EntityID)
}

func TestDispatcherSurvivesWriterErrors(t *testing.T) {
	w := &memoryWriter{fail: true}
	d := NewDispatcher(w, logging.Discard())

	d.Dispatch(Event{Action: "cleanup_completed"})
	d.Close()

	assert.Empty(t, w.events)
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "x"})
		d.Close()
	})
}

func TestToModelEncodesMetadata(t *testing.T) {
	row := ToModel(Event{
		Action:   "appointment_rejected",
		Entity:   "appointment",
		EntityID: "a1",
		Metadata: map[string]string{"reason": "Urlaub"},
	})

	assert.Equal(t, "appointment_rejected", row.Action)
	assert.Equal(t, `{"reason":"Urlaub"}`, row.Metadata)
}
