package get_available_slots

import (
	"time"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	getAvailableSlots "github.com/jazyl-tech/JZL-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlot модель временного слота
// Ответ ручки - плоский массив слотов, без обертки
type AvailableSlot struct {
	SlotTime string `json:"slot_time"` // "10:00:00"
	SlotEnd  string `json:"slot_end"`  // "10:30:00"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) []AvailableSlot {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			SlotTime: slot.StartTime.WithSeconds(),
			SlotEnd:  slot.EndTime.WithSeconds(),
		}
	}

	return slots
}

// ToUseCaseRequest создает запрос use case из параметров маршрута
func ToUseCaseRequest(masterID, serviceID, branchID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		MasterID:  masterID,
		ServiceID: serviceID,
		BranchID:  branchID,
		Date:      date,
	}, nil
}
