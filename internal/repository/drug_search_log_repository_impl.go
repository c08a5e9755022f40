package repository

import (
	"context"

	"pharma-info-service/internal/domain/entity"
	domainRepo "pharma-info-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type drugSearchLogRepository struct {
	db *gorm.DB
}

func NewDrugSearchLogRepository(db *gorm.DB) domainRepo.DrugSearchLogRepository {
	return &drugSearchLogRepository{db: db}
}

func (r *drugSearchLogRepository) Create(ctx context.Context, log *entity.DrugSearchLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *drugSearchLogRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.DrugSearchLog, error) {
	var logs []entity.DrugSearchLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *drugSearchLogRepository) FindAll(ctx context.Context, queryFilter string, limit int) ([]entity.DrugSearchLog, error) {
	var logs []entity.DrugSearchLog
	q := r.db.WithContext(ctx).Preload("User")
	if queryFilter != "" {
		q = q.Where("query ILIKE ?", "%"+queryFilter+"%")
	}
	err := q.Order("created_at DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
