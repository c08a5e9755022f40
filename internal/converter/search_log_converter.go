package converter

import (
	"pharma-info-service/internal/delivery/dto"
	"pharma-info-service/internal/domain/entity"
)

// SearchLogToResponse converts a DrugSearchLog entity to its DTO. The user
// projection is attached only when the relation was preloaded.
func SearchLogToResponse(log *entity.DrugSearchLog) dto.SearchLogResponse {
	return dto.SearchLogResponse{
		ID:          log.ID,
		Query:       log.Query,
		ResultCount: log.ResultCount,
		CreatedAt:   log.CreatedAt,
		User:        UserToResponse(log.User),
	}
}

func SearchLogsToResponses(logs []entity.DrugSearchLog) []dto.SearchLogResponse {
	responses := make([]dto.SearchLogResponse, len(logs))
	for i := range logs {
		responses[i] = SearchLogToResponse(&logs[i])
	}
	return responses
}
