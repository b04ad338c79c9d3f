package update_bid

import (
	"context"

	"github.com/jazyl-tech/JZL-BookingService/internal/service/advertising/models"
)

type AdvertisingService interface {
	UpdateBid(ctx context.Context, req *models.UpdateBidRequest) (*models.UpdateBidResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
