package notify

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

// Sender delivers one text message. It reports success and never returns an
// error; delivery problems are the sender's to log.
type Sender interface {
	Send(ctx context.Context, to, message string) bool
}

// NoopSender is used when no SMS provider is configured.
type NoopSender struct {
	logger *logging.Logger
}

func NewNoopSender(logger *logging.Logger) *NoopSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &NoopSender{logger: logger}
}

func (s *NoopSender) Send(ctx context.Context, to, message string) bool {
	s.logger.Warn("sms provider not configured, message dropped", "to", to)
	return false
}

var _ Sender = (*NoopSender)(nil)
