package create_booking

import (
	"time"

	"github.com/jazyl-tech/JZL-BookingService/pkg/types"
)

// Config параметры проверки доступности слота
type Config struct {
	StepMinutes     int // шаг сетки слотов
	BufferMinutes   int // буфер вокруг существующих бронирований
	LeadTimeMinutes int // минимальное время от текущего момента до начала слота
}

// Request модель запроса на создание бронирования
type Request struct {
	ClientID  int64            // ID клиента (из заголовка аутентификации)
	MasterID  int64            // ID мастера
	ServiceID int64            // ID услуги мастера
	BranchID  int64            // ID филиала салона
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Notes     *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	ClientID        int64            // ID клиента
	SalonID         int64            // ID салона (определяется по мастеру)
	MasterID        int64            // ID мастера
	BranchID        int64            // ID филиала
	ServiceID       int64            // ID услуги
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	// Снапшот услуги на момент создания
	ServiceName string  // Название услуги
	FinalPrice  float64 // Цена на момент бронирования

	Notes *string // Пожелания клиента

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
