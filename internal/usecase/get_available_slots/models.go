package get_available_slots

import (
	"time"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
)

// Config параметры расчета слотов
type Config struct {
	StepMinutes     int // шаг сетки кандидатов
	BufferMinutes   int // зазор вокруг существующих бронирований
	LeadTimeMinutes int // минимальное время до начала слота при записи на сегодня
}

// DefaultConfig возвращает параметры расчета по умолчанию
func DefaultConfig() Config {
	return Config{
		StepMinutes:     domain.DefaultSlotStepMinutes,
		BufferMinutes:   domain.DefaultBufferMinutes,
		LeadTimeMinutes: domain.DefaultMinLeadTimeMinutes,
	}
}

// Request модель запроса на получение доступных слотов
type Request struct {
	MasterID  int64     // ID мастера
	ServiceID int64     // ID услуги
	BranchID  int64     // ID филиала салона
	Date      time.Time // Дата для расчета слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	MasterID  int64
	ServiceID int64
	BranchID  int64
	Date      time.Time
	Slots     []domain.AvailableSlot // В хронологическом порядке
}
