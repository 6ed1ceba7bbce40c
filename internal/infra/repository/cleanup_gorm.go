package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// CleanupGormRepository deletes with RETURNING so the caller can archive
// exactly what was removed.
type CleanupGormRepository struct {
	db *gorm.DB
}

func NewCleanupGormRepository(db *gorm.DB) *CleanupGormRepository {
	return &CleanupGormRepository{db: db}
}

func (r *CleanupGormRepository) DeleteAppointmentsStartingBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]models.Appointment, error) {

	var deleted []models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("start_at < ?", cutoff).
		Delete(&deleted).Error; err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *CleanupGormRepository) DeleteAppointmentsWithStatus(
	ctx context.Context,
	statuses []domain.Status,
) ([]models.Appointment, error) {

	var deleted []models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("status IN ?", domain.StatusStrings(statuses)).
		Delete(&deleted).Error; err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *CleanupGormRepository) DeleteBlockedTimesEndingBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]models.BlockedTime, error) {

	var deleted []models.BlockedTime
	if err := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("end_at < ?", cutoff).
		Delete(&deleted).Error; err != nil {
		return nil, err
	}
	return deleted, nil
}

var _ domain.CleanupRepository = (*CleanupGormRepository)(nil)
