package handler

import (
	"net/http"
	"strconv"

	"pharma-info-service/internal/delivery/http/middleware"
	"pharma-info-service/internal/usecase"
	"pharma-info-service/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DrugHandler struct {
	drugUsecase usecase.DrugUsecase
}

func NewDrugHandler(drugUsecase usecase.DrugUsecase) *DrugHandler {
	return &DrugHandler{drugUsecase: drugUsecase}
}

// SearchDrugs searches drug labels by generic, brand or substance name
// @Summary Search drugs
// @Tags FDA
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Result cap (default 10)"
// @Success 200 {object} dto.DrugListResponse
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /fda/drugs [get]
func (h *DrugHandler) SearchDrugs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		response.Error(w, http.StatusBadRequest, "Search query is required", nil)
		return
	}

	var userID *uuid.UUID
	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		userID = &user.ID
	}

	result, err := h.drugUsecase.SearchDrugs(r.Context(), query, parseLimit(r), userID)
	if err != nil {
		switch err {
		case usecase.ErrNoSearchResults:
			response.NotFound(w, "No search results found")
		default:
			response.InternalServerError(w, "Failed to search drugs")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// GetDrugDetails looks a drug up by application number or record id
// @Summary Get drug details
// @Tags FDA
// @Produce json
// @Param drugId path string true "Application number or record id"
// @Success 200 {object} dto.DrugDetailEnvelope
// @Failure 404 {object} response.Response
// @Router /fda/drugs/{drugId} [get]
func (h *DrugHandler) GetDrugDetails(w http.ResponseWriter, r *http.Request) {
	drugID := mux.Vars(r)["drugId"]

	result, err := h.drugUsecase.GetDrugDetails(r.Context(), drugID)
	if err != nil {
		switch err {
		case usecase.ErrDrugNotFound:
			response.NotFound(w, "Drug not found")
		default:
			response.InternalServerError(w, "Failed to get drug details")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// GetAdverseEvents returns adverse-event reports implicating a drug
// @Summary Get adverse events
// @Tags FDA
// @Produce json
// @Param drug query string true "Drug name"
// @Param limit query int false "Result cap (default 10)"
// @Success 200 {object} dto.AdverseEventListResponse
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /fda/adverse-events [get]
func (h *DrugHandler) GetAdverseEvents(w http.ResponseWriter, r *http.Request) {
	drug := r.URL.Query().Get("drug")
	if drug == "" {
		response.Error(w, http.StatusBadRequest, "Drug name is required", nil)
		return
	}

	result, err := h.drugUsecase.GetAdverseEvents(r.Context(), drug, parseLimit(r))
	if err != nil {
		switch err {
		case usecase.ErrNoSearchResults:
			response.NotFound(w, "No adverse event reports found")
		default:
			response.InternalServerError(w, "Failed to get adverse events")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// GetDrugRecalls returns recall notices, optionally filtered by drug name
// @Summary Get drug recalls
// @Tags FDA
// @Produce json
// @Param drug query string false "Drug name"
// @Param limit query int false "Result cap (default 10)"
// @Success 200 {object} dto.RecallListResponse
// @Failure 404 {object} response.Response
// @Router /fda/drug-recalls [get]
func (h *DrugHandler) GetDrugRecalls(w http.ResponseWriter, r *http.Request) {
	drug := r.URL.Query().Get("drug")

	result, err := h.drugUsecase.GetDrugRecalls(r.Context(), drug, parseLimit(r))
	if err != nil {
		switch err {
		case usecase.ErrNoSearchResults:
			response.NotFound(w, "No recall notices found")
		default:
			response.InternalServerError(w, "Failed to get drug recalls")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// parseLimit reads the limit query parameter; non-numeric or missing values
// fall back to the usecase default.
func parseLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}
