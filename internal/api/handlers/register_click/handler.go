package register_click

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jazyl-tech/JZL-BookingService/internal/api/handlers"
	registerClick "github.com/jazyl-tech/JZL-BookingService/internal/usecase/register_click"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonNotFound      = "салон не найден"
)

// RegisterClickRequest HTTP request model
type RegisterClickRequest struct {
	SessionID *string `json:"session_id,omitempty"`
}

type Handler struct {
	useCase RegisterClickUseCase
	logger  Logger
}

func NewHandler(useCase RegisterClickUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/catalog/salons/{salonId}/click
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /catalog/salons/{id}/click - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Тело с идентификатором сессии опционально
	var req RegisterClickRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /catalog/salons/{id}/click - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := &registerClick.Request{
		SalonID:   salonID,
		SessionID: req.SessionID,
	}

	if err := h.useCase.Execute(r.Context(), useCaseReq); err != nil {
		switch {
		case errors.Is(err, registerClick.ErrSalonNotFound):
			h.logger.Warn("POST /catalog/salons/{id}/click - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, registerClick.ErrInvalidInput):
			h.logger.Warn("POST /catalog/salons/{id}/click - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /catalog/salons/{id}/click - Failed to register click: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /catalog/salons/{id}/click - Click registered successfully: salon_id=%d", salonID)
	w.WriteHeader(http.StatusNoContent)
}
