package advertising

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon not found")

	// ErrAccessDenied возвращается, когда пользователь не менеджер салона
	ErrAccessDenied = errors.New("access denied")

	// ErrAmountTooSmall возвращается при пополнении меньше минимальной суммы
	ErrAmountTooSmall = errors.New("top-up amount is below the minimum")

	// ErrBidTooSmall возвращается при ставке меньше минимальной
	ErrBidTooSmall = errors.New("auction bid is below the minimum")

	// ErrBudgetTooLow возвращается при попытке участвовать в аукционе с недостаточным бюджетом
	ErrBudgetTooLow = errors.New("advertising budget is too low to bid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
