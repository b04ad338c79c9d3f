package update_bid

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
	msgBidTooSmall        = "ставка меньше минимальной"
	msgBudgetTooLow       = "недостаточный бюджет для участия в аукционе"
)

// UpdateBidRequest HTTP request model
type UpdateBidRequest struct {
	Bid float64 `json:"bid"`
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

// Handle PUT /api/v1/salons/{salonId}/advertising/bid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/advertising/bid - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /salons/{id}/advertising/bid - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBidRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{id}/advertising/bid - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateBidRequest{
		UserID:  userID,
		SalonID: salonID,
		Bid:     req.Bid,
	}

	result, err := h.service.UpdateBid(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, advertising.ErrSalonNotFound):
			h.logger.Warn("PUT /salons/{id}/advertising/bid - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, advertising.ErrAccessDenied):
			h.logger.Warn("PUT /salons/{id}/advertising/bid - Access denied: salon_id=%d, user_id=%d",
				salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, advertising.ErrBidTooSmall):
			h.logger.Warn("PUT /salons/{id}/advertising/bid - Bid too small: salon_id=%d, bid=%.2f",
				salonID, req.Bid)
			handlers.RespondBadRequest(w, msgBidTooSmall)

		case errors.Is(err, advertising.ErrBudgetTooLow):
			h.logger.Warn("PUT /salons/{id}/advertising/bid - Budget too low: salon_id=%d", salonID)
			handlers.RespondBadRequest(w, msgBudgetTooLow)

		case errors.Is(err, advertising.ErrInvalidInput):
			h.logger.Warn("PUT /salons/{id}/advertising/bid - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /salons/{id}/advertising/bid - Failed to update bid: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id}/advertising/bid - Bid updated successfully: salon_id=%d, bid=%.2f",
		salonID, result.AuctionBid)
	handlers.RespondJSON(w, http.StatusOK, result)
}
