package get_available_slots

import (
	"fmt"
	"time"

	"github.com/jazyl-tech/JZL-BookingService/internal/integrations/salonservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MasterID <= 0 {
		return fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateMaster проверяет активность мастера и привязку к филиалу
func validateMaster(master *salonservice.Master, branchID int64) error {
	if !master.IsActive {
		return ErrMasterNotFound
	}
	if !master.WorksAtBranch(branchID) {
		return ErrBranchNotFound
	}
	return nil
}

// validateService проверяет активность услуги и ее доступность на филиале
func validateService(service *salonservice.MasterService, master *salonservice.Master, branchID int64) error {
	if !service.IsActive || service.SalonID != master.SalonID {
		return ErrServiceNotFound
	}
	if !service.AvailableAtBranch(branchID) {
		return ErrServiceNotAtBranch
	}
	return nil
}
