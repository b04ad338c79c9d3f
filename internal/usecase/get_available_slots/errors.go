package get_available_slots

import "errors"

var (
	// ErrMasterNotFound возвращается, когда мастер не найден или неактивен
	ErrMasterNotFound = errors.New("get_available_slots: master not found")

	// ErrBranchNotFound возвращается, когда мастер не принимает на указанном филиале
	ErrBranchNotFound = errors.New("get_available_slots: branch not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или мастер ее не оказывает
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrServiceNotAtBranch возвращается, когда услуга не оказывается на указанном филиале
	ErrServiceNotAtBranch = errors.New("get_available_slots: service is not available at this branch")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
