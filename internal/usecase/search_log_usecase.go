package usecase

import (
	"context"

	"pharma-info-service/internal/converter"
	"pharma-info-service/internal/delivery/dto"
	"pharma-info-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type SearchLogUsecase interface {
	// GetUserHistory returns the caller's own searches, newest first.
	GetUserHistory(ctx context.Context, userID uuid.UUID, limit int) (*dto.SearchLogListResponse, error)
	// ListAll returns searches across all users, optionally filtered by
	// query text. Admin only, enforced by the delivery layer.
	ListAll(ctx context.Context, queryFilter string, limit int) (*dto.SearchLogListResponse, error)
}

type searchLogUsecase struct {
	log           *logrus.Logger
	searchLogRepo repository.DrugSearchLogRepository
}

func NewSearchLogUsecase(log *logrus.Logger, searchLogRepo repository.DrugSearchLogRepository) SearchLogUsecase {
	return &searchLogUsecase{
		log:           log,
		searchLogRepo: searchLogRepo,
	}
}

func (u *searchLogUsecase) GetUserHistory(ctx context.Context, userID uuid.UUID, limit int) (*dto.SearchLogListResponse, error) {
	logs, err := u.searchLogRepo.FindByUser(ctx, userID, clampHistoryLimit(limit))
	if err != nil {
		u.log.Warnf("Failed to load search history for user %s: %+v", userID, err)
		return nil, err
	}

	searches := converter.SearchLogsToResponses(logs)
	return &dto.SearchLogListResponse{
		Success:  true,
		Total:    len(searches),
		Searches: searches,
	}, nil
}

func (u *searchLogUsecase) ListAll(ctx context.Context, queryFilter string, limit int) (*dto.SearchLogListResponse, error) {
	logs, err := u.searchLogRepo.FindAll(ctx, queryFilter, clampHistoryLimit(limit))
	if err != nil {
		u.log.Warnf("Failed to list search logs: %+v", err)
		return nil, err
	}

	searches := converter.SearchLogsToResponses(logs)
	return &dto.SearchLogListResponse{
		Success:  true,
		Total:    len(searches),
		Searches: searches,
	}, nil
}

func clampHistoryLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}
