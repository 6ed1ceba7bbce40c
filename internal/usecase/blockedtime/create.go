package blockedtime

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

const (
	CodeMissingBounds = "missing_bounds"
	CodeInvalidRange  = "invalid_range"
	CodeNotFound      = "blocked_time_not_found"
)

type CreateInput = validators.BlockedTimeRequest

type CreateBlockedTime struct {
	repo  domain.BlockedTimeRepository
	audit *audit.Dispatcher
}

func NewCreateBlockedTime(
	repo domain.BlockedTimeRepository,
	audit *audit.Dispatcher,
) *CreateBlockedTime {
	return &CreateBlockedTime{
		repo:  repo,
		audit: audit,
	}
}

// Execute stores an admin block. Existing appointments inside it are left alone.
func (uc *CreateBlockedTime) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.BlockedTime, error) {

	window, err := validators.ValidateBlockedTime(in)
	switch {
	case errors.Is(err, validators.ErrMissingBounds):
		return nil, httperr.ErrBusiness(CodeMissingBounds)
	case errors.Is(err, validators.ErrEndNotAfterStart):
		return nil, httperr.ErrBusiness(CodeInvalidRange)
	case err != nil:
		return nil, err
	}

	bt := &models.BlockedTime{
		StartAt: window.StartAt.UTC(),
		EndAt:   window.EndAt.UTC(),
		Reason:  window.Reason,
	}

	if err := uc.repo.CreateBlockedTime(ctx, bt); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "blocked_time_created",
		Entity:   "blocked_time",
		EntityID: bt.ID.String(),
		Metadata: map[string]any{
			"start_at": domain.FormatInstant(bt.StartAt),
			"end_at":   domain.FormatInstant(bt.EndAt),
		},
	})

	return bt, nil
}
