package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ConstraintNoOverlap is the exclusion constraint created by db.NewDB.
const ConstraintNoOverlap = "appointments_no_overlap"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func activeStatuses() []string {
	return domain.StatusStrings(domain.ActiveStatuses)
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	activeAfter time.Time,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if domain.Status(ap.Status).IsActive() {
			// held until commit; concurrent requests for one phone queue here
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", ap.CustomerPhone).Error; err != nil {
				return err
			}

			var count int64
			if err := tx.Model(&models.Appointment{}).
				Where("customer_phone = ? AND status IN ? AND start_at > ?", ap.CustomerPhone, activeStatuses(), activeAfter).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return domain.ErrActiveBookingExists
			}
		}
		return tx.Create(ap).Error
	})

	if httperr.IsExclusionConflict(err, ConstraintNoOverlap) {
		return domain.ErrSlotTaken
	}
	return err
}

func (r *AppointmentGormRepository) FindActiveByPhone(
	ctx context.Context,
	phone string,
	startsAfter time.Time,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where("customer_phone = ? AND status IN ? AND start_at > ?", phone, activeStatuses(), startsAfter).
		Order("start_at ASC").
		Take(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) HasOverlap(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("status IN ? AND start_at < ? AND end_at > ?", activeStatuses(), end, start).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) TransitionStatus(
	ctx context.Context,
	id uuid.UUID,
	from []domain.Status,
	to domain.Status,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status IN ?", id, domain.StatusStrings(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Availability / listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveInRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var list []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status IN ? AND start_at < ? AND end_at > ?", activeStatuses(), end, start).
		Order("start_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.From != nil {
		q = q.Where("start_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("start_at < ?", *filter.To)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}

	list := []models.Appointment{}
	if err := q.Order("start_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)
