package register_click

import (
	"context"
	"time"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
)

// SalonRepository интерфейс репозитория витринных салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CatalogSalon, error)
	ChargeBudget(ctx context.Context, salonID int64, cost float64) error
	DemoteToOrganic(ctx context.Context, salonID int64) error
}

// CatalogRepository интерфейс репозитория событий каталога
type CatalogRepository interface {
	CreateClick(ctx context.Context, click *domain.CatalogClick) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
