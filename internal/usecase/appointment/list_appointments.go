package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type ListAppointmentsInput struct {
	Date   string
	Status string
}

type ListAppointments struct {
	repo     domain.Repository
	schedule *domain.Schedule
}

func NewListAppointments(
	repo domain.Repository,
	schedule *domain.Schedule,
) *ListAppointments {
	return &ListAppointments{
		repo:     repo,
		schedule: schedule,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	var filter domain.ListFilter
	var issues []validators.Issue

	if d := strings.TrimSpace(in.Date); d != "" {
		day, err := timezone.ParseDate(d, uc.schedule.Location())
		if err != nil {
			issues = append(issues, validators.Issue{
				Field:   "date",
				Message: "Ungültiges Datumsformat (YYYY-MM-DD)",
			})
		} else {
			start, end := timezone.DayRange(day, uc.schedule.Location())
			filter.From = &start
			filter.To = &end
		}
	}

	if s := strings.TrimSpace(in.Status); s != "" {
		status, ok := domain.ParseStatus(s)
		if !ok {
			issues = append(issues, validators.Issue{
				Field:   "status",
				Message: "Ungültiger Status",
			})
		} else {
			filter.Status = &status
		}
	}

	if len(issues) > 0 {
		return nil, &validators.ValidationError{Issues: issues}
	}

	return uc.repo.ListAppointments(ctx, filter)
}
