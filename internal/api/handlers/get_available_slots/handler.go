package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jazyl-tech/JZL-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/jazyl-tech/JZL-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidMasterID    = "некорректный ID мастера"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidBranchID    = "некорректный ID филиала"
	msgMissingServiceID   = "ID услуги обязателен"
	msgMissingBranchID    = "ID филиала обязателен"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast         = "дата не может быть в прошлом"
	msgMasterNotFound     = "мастер не найден"
	msgBranchNotFound     = "мастер не принимает в этом филиале"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceNotAtBranch = "услуга недоступна в выбранном филиале"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/available-slots
// Query params: service_id (required), branch_id (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	masterIDStr := vars["masterId"]
	masterID, err := strconv.ParseInt(masterIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/available-slots - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	serviceIDStr := r.URL.Query().Get("service_id")
	if serviceIDStr == "" {
		h.logger.Warn("GET /masters/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	branchIDStr := r.URL.Query().Get("branch_id")
	if branchIDStr == "" {
		h.logger.Warn("GET /masters/{id}/available-slots - Missing branch ID")
		handlers.RespondBadRequest(w, msgMissingBranchID)
		return
	}

	branchID, err := strconv.ParseInt(branchIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/available-slots - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /masters/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(masterID, serviceID, branchID, dateStr)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrMasterNotFound):
			h.logger.Warn("GET /masters/{id}/available-slots - Master not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, getAvailableSlots.ErrBranchNotFound):
			h.logger.Warn("GET /masters/{id}/available-slots - Branch not found: master_id=%d, branch_id=%d",
				masterID, branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /masters/{id}/available-slots - Service not found: master_id=%d, service_id=%d",
				masterID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotAtBranch):
			h.logger.Warn("GET /masters/{id}/available-slots - Service not at branch: master_id=%d, branch_id=%d, service_id=%d",
				masterID, branchID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotAtBranch)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /masters/{id}/available-slots - Date in past: master_id=%d, date=%s", masterID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /masters/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /masters/{id}/available-slots - Failed to get slots: master_id=%d, branch_id=%d, service_id=%d, error=%v",
				masterID, branchID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /masters/{id}/available-slots - Slots retrieved successfully: master_id=%d, branch_id=%d, service_id=%d, slots_count=%d",
		masterID, branchID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
