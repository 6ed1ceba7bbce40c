package blockedtime

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type ListInput struct {
	From string
	To   string
}

type ListBlockedTimes struct {
	repo domain.BlockedTimeRepository
	loc  *time.Location
}

func NewListBlockedTimes(repo domain.BlockedTimeRepository, loc *time.Location) *ListBlockedTimes {
	return &ListBlockedTimes{repo: repo, loc: loc}
}

// Execute lists blocks with start >= from and end <= to. A bare date as `to`
// covers that whole day.
func (uc *ListBlockedTimes) Execute(
	ctx context.Context,
	in ListInput,
) ([]models.BlockedTime, error) {

	var issues []validators.Issue

	from, err := uc.bound(in.From, false)
	if err != nil {
		issues = append(issues, validators.Issue{Field: "from", Message: "Ungültiges Datum"})
	}
	to, err := uc.bound(in.To, true)
	if err != nil {
		issues = append(issues, validators.Issue{Field: "to", Message: "Ungültiges Datum"})
	}
	if len(issues) > 0 {
		return nil, &validators.ValidationError{Issues: issues}
	}

	return uc.repo.ListBlockedTimes(ctx, from, to)
}

func (uc *ListBlockedTimes) bound(raw string, upper bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := validators.ParseInstant(raw); err == nil {
		return &t, nil
	}
	day, err := timezone.ParseDate(raw, uc.loc)
	if err != nil {
		return nil, err
	}
	if upper {
		day = day.AddDate(0, 0, 1)
	}
	return &day, nil
}
