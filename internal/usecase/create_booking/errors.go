package create_booking

import "errors"

var (
	// ErrMasterNotFound возвращается, когда мастер не найден или неактивен
	ErrMasterNotFound = errors.New("create_booking: master not found")

	// ErrBranchNotFound возвращается, когда мастер не работает в указанном филиале
	ErrBranchNotFound = errors.New("create_booking: master does not work at this branch")

	// ErrServiceNotFound возвращается, когда услуга не найдена у мастера
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotAtBranch возвращается, когда услуга недоступна в указанном филиале
	ErrServiceNotAtBranch = errors.New("create_booking: service is not available at this branch")

	// ErrMasterNotWorking возвращается, когда мастер не работает в указанную дату
	ErrMasterNotWorking = errors.New("create_booking: master is not working on this date")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrTooLateToBook возвращается, когда бронирование нарушает минимальное время упреждения
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidTimeSlot возвращается, когда время слота вне рабочих интервалов или не попадает на сетку
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
