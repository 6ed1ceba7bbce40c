package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BlockedTimeGormRepository struct {
	db *gorm.DB
}

func NewBlockedTimeGormRepository(db *gorm.DB) *BlockedTimeGormRepository {
	return &BlockedTimeGormRepository{db: db}
}

func (r *BlockedTimeGormRepository) CreateBlockedTime(
	ctx context.Context,
	bt *models.BlockedTime,
) error {
	return r.db.WithContext(ctx).Create(bt).Error
}

func (r *BlockedTimeGormRepository) ListBlockedTimes(
	ctx context.Context,
	from *time.Time,
	to *time.Time,
) ([]models.BlockedTime, error) {

	q := r.db.WithContext(ctx).Model(&models.BlockedTime{})
	if from != nil {
		q = q.Where("start_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("end_at <= ?", *to)
	}

	list := []models.BlockedTime{}
	if err := q.Order("start_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *BlockedTimeGormRepository) ListBlockedOverlapping(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.BlockedTime, error) {

	var list []models.BlockedTime
	if err := r.db.WithContext(ctx).
		Where("start_at < ? AND end_at > ?", end, start).
		Order("start_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *BlockedTimeGormRepository) DeleteBlockedTime(
	ctx context.Context,
	id uuid.UUID,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.BlockedTime{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

var _ domain.BlockedTimeRepository = (*BlockedTimeGormRepository)(nil)
