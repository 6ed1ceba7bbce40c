package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlockedTime struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	StartAt time.Time `gorm:"not null;index" json:"start_at"`
	EndAt   time.Time `gorm:"not null;index" json:"end_at"`
	Reason  *string   `gorm:"type:text" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *BlockedTime) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
