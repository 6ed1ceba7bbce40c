package dto

import (
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BlockedTimeDTO struct {
	ID        string  `json:"id"`
	StartAt   string  `json:"startAt"`
	EndAt     string  `json:"endAt"`
	Reason    *string `json:"reason"`
	CreatedAt string  `json:"createdAt"`
}

func NewBlockedTimeDTO(bt models.BlockedTime) BlockedTimeDTO {
	return BlockedTimeDTO{
		ID:        bt.ID.String(),
		StartAt:   domain.FormatInstant(bt.StartAt),
		EndAt:     domain.FormatInstant(bt.EndAt),
		Reason:    bt.Reason,
		CreatedAt: domain.FormatInstant(bt.CreatedAt),
	}
}

func NewBlockedTimeDTOs(bts []models.BlockedTime) []BlockedTimeDTO {
	out := make([]BlockedTimeDTO, 0, len(bts))
	for _, bt := range bts {
		out = append(out, NewBlockedTimeDTO(bt))
	}
	return out
}
