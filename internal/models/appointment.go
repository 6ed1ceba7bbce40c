package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	StartAt         time.Time `gorm:"not null;index" json:"start_at"`
	EndAt           time.Time `gorm:"not null" json:"end_at"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	BufferMinutes   int       `gorm:"not null" json:"buffer_minutes"`

	Services pq.StringArray `gorm:"type:text[];not null" json:"services"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null;index" json:"customer_phone"`

	Status string `gorm:"size:20;not null;default:'PENDING';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
