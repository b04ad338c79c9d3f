package salonservice

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salonservice client: salon not found")

	// ErrMasterNotFound возвращается, когда мастер не найден или неактивен
	ErrMasterNotFound = errors.New("salonservice client: master not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или мастер ее не оказывает
	ErrServiceNotFound = errors.New("salonservice client: service not found")

	// ErrScheduleNotFound возвращается, когда у мастера нет расписания на филиале
	ErrScheduleNotFound = errors.New("salonservice client: schedule not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("salonservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("salonservice client: invalid response")
)
