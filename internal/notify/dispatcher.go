package notify

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

// Dispatcher formats and sends one SMS per appointment event. Failures are
// logged and reported as false, never returned as errors.
type Dispatcher struct {
	sender    Sender
	formatter *Formatter
	logger    *logging.Logger
	metrics   *metrics.BookingMetrics
}

func NewDispatcher(
	sender Sender,
	formatter *Formatter,
	logger *logging.Logger,
	m *metrics.BookingMetrics,
) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{
		sender:    sender,
		formatter: formatter,
		logger:    logger,
		metrics:   m,
	}
}

func (d *Dispatcher) RequestReceived(ctx context.Context, det Details) bool {
	return d.send(ctx, KindRequestReceived, det.Phone, d.formatter.RequestReceived(det))
}

func (d *Dispatcher) Confirmed(ctx context.Context, det Details) bool {
	return d.send(ctx, KindConfirmed, det.Phone, d.formatter.Confirmed(det))
}

func (d *Dispatcher) Rejected(ctx context.Context, det Details, reason string) bool {
	return d.send(ctx, KindRejected, det.Phone, d.formatter.Rejected(det, reason))
}

func (d *Dispatcher) Cancelled(ctx context.Context, det Details, reason string) bool {
	return d.send(ctx, KindCancelled, det.Phone, d.formatter.Cancelled(det, reason))
}

func (d *Dispatcher) send(ctx context.Context, kind Kind, to, body string) bool {
	if d.sender == nil {
		return false
	}

	ok := d.sender.Send(ctx, to, body)
	d.metrics.ObserveNotification(string(kind), ok)
	if !ok {
		d.logger.Warn("notification not delivered", "kind", kind, "to", to)
	}
	return ok
}
