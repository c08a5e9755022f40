package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pharma-info-service/internal/converter"
	"pharma-info-service/internal/delivery/dto"
	"pharma-info-service/internal/domain/entity"
	"pharma-info-service/internal/domain/repository"
	"pharma-info-service/internal/infrastructure/openfda"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoSearchResults = errors.New("no search results found")
	ErrDrugNotFound    = errors.New("drug not found")
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// DrugProvider is the slice of the openFDA client the gateway needs.
type DrugProvider interface {
	SearchLabels(ctx context.Context, search string, limit int) (*openfda.LabelResponse, error)
	SearchEvents(ctx context.Context, search string, limit int) (*openfda.EventResponse, error)
	SearchEnforcements(ctx context.Context, search string, limit int) (*openfda.EnforcementResponse, error)
}

// ProviderCache is a read-through cache of reshaped provider responses.
// A nil cache disables caching.
type ProviderCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
}

type DrugUsecase interface {
	// SearchDrugs runs the disjunctive label search. When userID is set, the
	// search is recorded after the provider call succeeds; the record write
	// never gates the response.
	SearchDrugs(ctx context.Context, query string, limit int, userID *uuid.UUID) (*dto.DrugListResponse, error)
	GetDrugDetails(ctx context.Context, drugID string) (*dto.DrugDetailEnvelope, error)
	GetAdverseEvents(ctx context.Context, drug string, limit int) (*dto.AdverseEventListResponse, error)
	GetDrugRecalls(ctx context.Context, drug string, limit int) (*dto.RecallListResponse, error)
}

type drugUsecase struct {
	log           *logrus.Logger
	provider      DrugProvider
	cache         ProviderCache
	searchLogRepo repository.DrugSearchLogRepository
}

func NewDrugUsecase(
	log *logrus.Logger,
	provider DrugProvider,
	cache ProviderCache,
	searchLogRepo repository.DrugSearchLogRepository,
) DrugUsecase {
	return &drugUsecase{
		log:           log,
		provider:      provider,
		cache:         cache,
		searchLogRepo: searchLogRepo,
	}
}

func (u *drugUsecase) SearchDrugs(ctx context.Context, query string, limit int, userID *uuid.UUID) (*dto.DrugListResponse, error) {
	limit = clampLimit(limit)

	var result dto.DrugListResponse
	key := fmt.Sprintf("fda:drugs:%s:%d", query, limit)
	if !u.cacheGet(ctx, key, &result) {
		resp, err := u.provider.SearchLabels(ctx, openfda.LabelSearchQuery(query), limit)
		if err != nil {
			if errors.Is(err, openfda.ErrNoResults) {
				return nil, ErrNoSearchResults
			}
			u.log.Warnf("Label search failed: %+v", err)
			return nil, err
		}

		drugs := converter.LabelsToDrugs(resp.Results)
		result = dto.DrugListResponse{
			Success: true,
			Total:   totalOf(resp.Meta, len(drugs)),
			Drugs:   drugs,
		}
		u.cacheSet(ctx, key, result)
	}

	if userID != nil {
		u.recordSearch(*userID, query, result.Total)
	}

	return &result, nil
}

func (u *drugUsecase) GetDrugDetails(ctx context.Context, drugID string) (*dto.DrugDetailEnvelope, error) {
	var result dto.DrugDetailEnvelope
	key := fmt.Sprintf("fda:drug:%s", drugID)
	if u.cacheGet(ctx, key, &result) {
		return &result, nil
	}

	resp, err := u.provider.SearchLabels(ctx, openfda.LabelDetailQuery(drugID), 1)
	if err != nil {
		if errors.Is(err, openfda.ErrNoResults) {
			return nil, ErrDrugNotFound
		}
		u.log.Warnf("Label lookup failed: %+v", err)
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, ErrDrugNotFound
	}

	result = dto.DrugDetailEnvelope{
		Success: true,
		Drug:    converter.LabelToDrugDetail(&resp.Results[0]),
	}
	u.cacheSet(ctx, key, result)
	return &result, nil
}

func (u *drugUsecase) GetAdverseEvents(ctx context.Context, drug string, limit int) (*dto.AdverseEventListResponse, error) {
	limit = clampLimit(limit)

	var result dto.AdverseEventListResponse
	key := fmt.Sprintf("fda:events:%s:%d", drug, limit)
	if u.cacheGet(ctx, key, &result) {
		return &result, nil
	}

	resp, err := u.provider.SearchEvents(ctx, openfda.EventSearchQuery(drug), limit)
	if err != nil {
		if errors.Is(err, openfda.ErrNoResults) {
			return nil, ErrNoSearchResults
		}
		u.log.Warnf("Adverse event search failed: %+v", err)
		return nil, err
	}

	events := converter.EventsToResponses(resp.Results)
	result = dto.AdverseEventListResponse{
		Success: true,
		Total:   totalOf(resp.Meta, len(events)),
		Events:  events,
	}
	u.cacheSet(ctx, key, result)
	return &result, nil
}

func (u *drugUsecase) GetDrugRecalls(ctx context.Context, drug string, limit int) (*dto.RecallListResponse, error) {
	limit = clampLimit(limit)

	var result dto.RecallListResponse
	key := fmt.Sprintf("fda:recalls:%s:%d", drug, limit)
	if u.cacheGet(ctx, key, &result) {
		return &result, nil
	}

	// Without a drug name the provider returns recalls unfiltered.
	search := ""
	if drug != "" {
		search = openfda.EnforcementSearchQuery(drug)
	}

	resp, err := u.provider.SearchEnforcements(ctx, search, limit)
	if err != nil {
		if errors.Is(err, openfda.ErrNoResults) {
			return nil, ErrNoSearchResults
		}
		u.log.Warnf("Recall search failed: %+v", err)
		return nil, err
	}

	recalls := converter.EnforcementsToRecalls(resp.Results)
	result = dto.RecallListResponse{
		Success: true,
		Total:   totalOf(resp.Meta, len(recalls)),
		Recalls: recalls,
	}
	u.cacheSet(ctx, key, result)
	return &result, nil
}

// recordSearch persists the search log asynchronously. Failures are logged
// and never surface to the caller.
func (u *drugUsecase) recordSearch(userID uuid.UUID, query string, total int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		searchLog := &entity.DrugSearchLog{
			UserID:      userID,
			Query:       query,
			ResultCount: total,
		}
		if err := u.searchLogRepo.Create(ctx, searchLog); err != nil {
			u.log.Warnf("Failed to record drug search for user %s: %+v", userID, err)
		}
	}()
}

func (u *drugUsecase) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	return u.cache != nil && u.cache.Get(ctx, key, dest)
}

func (u *drugUsecase) cacheSet(ctx context.Context, key string, value interface{}) {
	if u.cache != nil {
		u.cache.Set(ctx, key, value)
	}
}

// totalOf prefers the provider's reported total and falls back to the
// returned list's length.
func totalOf(meta openfda.Meta, listLen int) int {
	if meta.Results.Total > 0 {
		return meta.Results.Total
	}
	return listLen
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
