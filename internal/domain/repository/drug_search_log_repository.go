package repository

import (
	"context"

	"pharma-info-service/internal/domain/entity"

	"github.com/google/uuid"
)

type DrugSearchLogRepository interface {
	Create(ctx context.Context, log *entity.DrugSearchLog) error
	// FindByUser returns the user's searches, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.DrugSearchLog, error)
	// FindAll returns searches across all users, newest first, optionally
	// filtered by a substring match on the query text.
	FindAll(ctx context.Context, queryFilter string, limit int) ([]entity.DrugSearchLog, error)
}
