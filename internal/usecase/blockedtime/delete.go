package blockedtime

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type DeleteBlockedTime struct {
	repo  domain.BlockedTimeRepository
	audit *audit.Dispatcher
}

func NewDeleteBlockedTime(
	repo domain.BlockedTimeRepository,
	audit *audit.Dispatcher,
) *DeleteBlockedTime {
	return &DeleteBlockedTime{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBlockedTime) Execute(ctx context.Context, id uuid.UUID) error {
	deleted, err := uc.repo.DeleteBlockedTime(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness(CodeNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "blocked_time_deleted",
		Entity:   "blocked_time",
		EntityID: id.String(),
	})
	return nil
}
