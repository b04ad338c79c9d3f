package models

// TopUpRequest запрос на пополнение рекламного бюджета
type TopUpRequest struct {
	UserID  int64   `json:"user_id"`
	SalonID int64   `json:"salon_id"`
	Amount  float64 `json:"amount"`
}

// TopUpResponse ответ с новым остатком бюджета
type TopUpResponse struct {
	SalonID           int64   `json:"salon_id"`
	AdvertisingBudget float64 `json:"advertising_budget"`
}

// UpdateBidRequest запрос на изменение аукционной ставки
// Нулевая ставка снимает салон с аукциона
type UpdateBidRequest struct {
	UserID  int64   `json:"user_id"`
	SalonID int64   `json:"salon_id"`
	Bid     float64 `json:"bid"`
}

// UpdateBidResponse ответ с действующей ставкой
type UpdateBidResponse struct {
	SalonID    int64   `json:"salon_id"`
	AuctionBid float64 `json:"auction_bid"`
}
