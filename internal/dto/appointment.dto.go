package dto

import (
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// AppointmentDTO is the admin view of an appointment.
type AppointmentDTO struct {
	ID              string   `json:"id"`
	StartAt         string   `json:"startAt"`
	EndAt           string   `json:"endAt"`
	DurationMinutes int      `json:"durationMinutes"`
	BufferMinutes   int      `json:"bufferMinutes"`
	Services        []string `json:"services"`
	CustomerName    string   `json:"customerName"`
	CustomerPhone   string   `json:"customerPhone"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// BookingDTO is what a customer sees after submitting a request.
type BookingDTO struct {
	ID       string   `json:"id"`
	StartAt  string   `json:"startAt"`
	EndAt    string   `json:"endAt"`
	Services []string `json:"services"`
	Status   string   `json:"status"`
}

type ExistingBookingDTO struct {
	ID      string `json:"id"`
	StartAt string `json:"startAt"`
}

func services(ap models.Appointment) []string {
	if ap.Services == nil {
		return []string{}
	}
	return []string(ap.Services)
}

func NewAppointmentDTO(ap models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:              ap.ID.String(),
		StartAt:         domain.FormatInstant(ap.StartAt),
		EndAt:           domain.FormatInstant(ap.EndAt),
		DurationMinutes: ap.DurationMinutes,
		BufferMinutes:   ap.BufferMinutes,
		Services:        services(ap),
		CustomerName:    ap.CustomerName,
		CustomerPhone:   ap.CustomerPhone,
		Status:          ap.Status,
		CreatedAt:       domain.FormatInstant(ap.CreatedAt),
		UpdatedAt:       domain.FormatInstant(ap.UpdatedAt),
	}
}

func NewAppointmentDTOs(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, NewAppointmentDTO(ap))
	}
	return out
}

func NewBookingDTO(ap models.Appointment) BookingDTO {
	return BookingDTO{
		ID:       ap.ID.String(),
		StartAt:  domain.FormatInstant(ap.StartAt),
		EndAt:    domain.FormatInstant(ap.EndAt),
		Services: services(ap),
		Status:   ap.Status,
	}
}
