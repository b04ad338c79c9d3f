package topup_budget

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jazyl-tech/JZL-BookingService/internal/api/handlers"
	"github.com/jazyl-tech/JZL-BookingService/internal/api/middleware"
	"github.com/jazyl-tech/JZL-BookingService/internal/service/advertising"
	"github.com/jazyl-tech/JZL-BookingService/internal/service/advertising/models"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSalonNotFound      = "салон не найден"
	msgForbidden          = "доступ запрещен"
	msgAmountTooSmall     = "сумма пополнения меньше минимальной"
)

// TopUpRequest HTTP request model
type TopUpRequest struct {
	Amount float64 `json:"amount"`
}

type Handler struct {
	service AdvertisingService
	logger  Logger
}

func NewHandler(service AdvertisingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonId}/advertising/topup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/advertising/topup - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /salons/{id}/advertising/topup - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req TopUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/advertising/topup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.TopUpRequest{
		UserID:  userID,
		SalonID: salonID,
		Amount:  req.Amount,
	}

	result, err := h.service.TopUp(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, advertising.ErrSalonNotFound):
			h.logger.Warn("POST /salons/{id}/advertising/topup - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, advertising.ErrAccessDenied):
			h.logger.Warn("POST /salons/{id}/advertising/topup - Access denied: salon_id=%d, user_id=%d",
				salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, advertising.ErrAmountTooSmall):
			h.logger.Warn("POST /salons/{id}/advertising/topup - Amount too small: salon_id=%d, amount=%.2f",
				salonID, req.Amount)
			handlers.RespondBadRequest(w, msgAmountTooSmall)

		case errors.Is(err, advertising.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/advertising/topup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /salons/{id}/advertising/topup - Failed to top up: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/advertising/topup - Budget topped up successfully: salon_id=%d, amount=%.2f, balance=%.2f",
		salonID, req.Amount, result.AdvertisingBudget)
	handlers.RespondJSON(w, http.StatusOK, result)
}
