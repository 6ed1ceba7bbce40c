package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

// Notifier is the best-effort SMS side effect of booking and admin actions.
type Notifier interface {
	RequestReceived(ctx context.Context, d notify.Details) bool
	Confirmed(ctx context.Context, d notify.Details) bool
	Rejected(ctx context.Context, d notify.Details, reason string) bool
	Cancelled(ctx context.Context, d notify.Details, reason string) bool
}

func detailsOf(ap *models.Appointment) notify.Details {
	return notify.Details{
		Phone:        ap.CustomerPhone,
		CustomerName: ap.CustomerName,
		StartAt:      ap.StartAt,
		Services:     []string(ap.Services),
	}
}
