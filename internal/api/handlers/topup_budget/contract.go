package topup_budget

import (
	"context"

	"github.com/jazyl-tech/JZL-BookingService/internal/service/advertising/models"
)

type AdvertisingService interface {
	TopUp(ctx context.Context, req *models.TopUpRequest) (*models.TopUpResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
