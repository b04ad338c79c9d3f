package advertising

import (
	"context"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	"github.com/jazyl-tech/JZL-BookingService/internal/integrations/salonservice"
)

// SalonRepository интерфейс репозитория витринных салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CatalogSalon, error)
	TopUpBudget(ctx context.Context, salonID int64, amount float64) (float64, error)
	UpdateBid(ctx context.Context, salonID int64, bid float64) error
}

// SalonServiceClient интерфейс клиента для SalonService
type SalonServiceClient interface {
	GetSalon(ctx context.Context, salonID int64) (*salonservice.Salon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
