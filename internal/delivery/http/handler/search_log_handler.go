package handler

import (
	"net/http"

	"pharma-info-service/internal/delivery/http/middleware"
	"pharma-info-service/internal/usecase"
	"pharma-info-service/pkg/response"
)

type SearchLogHandler struct {
	searchLogUsecase usecase.SearchLogUsecase
}

func NewSearchLogHandler(searchLogUsecase usecase.SearchLogUsecase) *SearchLogHandler {
	return &SearchLogHandler{searchLogUsecase: searchLogUsecase}
}

// GetMyHistory returns the caller's recent drug searches
// @Summary Get own search history
// @Tags FDA
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Result cap (default 20)"
// @Success 200 {object} dto.SearchLogListResponse
// @Failure 401 {object} response.Response
// @Router /fda/search-history [get]
func (h *SearchLogHandler) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authorization failed")
		return
	}

	result, err := h.searchLogUsecase.GetUserHistory(r.Context(), user.ID, parseLimit(r))
	if err != nil {
		response.InternalServerError(w, "Failed to load search history")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// ListSearchLogs returns recent searches across all users
// @Summary List all search logs
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Filter on query text"
// @Param limit query int false "Result cap (default 20)"
// @Success 200 {object} dto.SearchLogListResponse
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/search-logs [get]
func (h *SearchLogHandler) ListSearchLogs(w http.ResponseWriter, r *http.Request) {
	result, err := h.searchLogUsecase.ListAll(r.Context(), r.URL.Query().Get("q"), parseLimit(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list search logs")
		return
	}

	response.JSON(w, http.StatusOK, result)
}
