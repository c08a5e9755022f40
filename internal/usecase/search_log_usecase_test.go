package usecase

import (
	"context"
	"testing"
	"time"

	"pharma-info-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sirupsen/logrus"
)

func TestSearchLogUsecase_GetUserHistory(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	repo := new(MockSearchLogRepository)
	repo.On("FindByUser", mock.Anything, userID, defaultHistoryLimit).
		Return([]entity.DrugSearchLog{
			{ID: 2, UserID: userID, Query: "ibuprofen", ResultCount: 12, CreatedAt: now},
			{ID: 1, UserID: userID, Query: "aspirin", ResultCount: 231, CreatedAt: now.Add(-time.Hour)},
		}, nil)

	uc := NewSearchLogUsecase(logrus.New(), repo)
	result, err := uc.GetUserHistory(context.Background(), userID, 0)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Searches, 2)
	assert.Equal(t, "ibuprofen", result.Searches[0].Query)
	assert.Equal(t, 231, result.Searches[1].ResultCount)
	// User relation not preloaded for own history.
	assert.Nil(t, result.Searches[0].User)

	repo.AssertExpectations(t)
}

func TestSearchLogUsecase_GetUserHistory_Empty(t *testing.T) {
	userID := uuid.New()

	repo := new(MockSearchLogRepository)
	repo.On("FindByUser", mock.Anything, userID, defaultHistoryLimit).
		Return([]entity.DrugSearchLog{}, nil)

	uc := NewSearchLogUsecase(logrus.New(), repo)
	result, err := uc.GetUserHistory(context.Background(), userID, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.NotNil(t, result.Searches)
	assert.Empty(t, result.Searches)
}

func TestSearchLogUsecase_ListAll_ClampsLimit(t *testing.T) {
	repo := new(MockSearchLogRepository)
	repo.On("FindAll", mock.Anything, "aspirin", maxHistoryLimit).
		Return([]entity.DrugSearchLog{}, nil)

	uc := NewSearchLogUsecase(logrus.New(), repo)
	_, err := uc.ListAll(context.Background(), "aspirin", 5000)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
