package domain

// Параметры расчета доступных слотов (могут быть переопределены в config.toml)
const (
	DefaultSlotStepMinutes    = 15 // шаг сетки кандидатов
	DefaultBufferMinutes      = 5  // минимальный зазор между записями одного мастера
	DefaultMinLeadTimeMinutes = 60 // минимальное время до начала слота при записи на сегодня
)

// Параметры ранжирования каталога
const (
	// Веса композитного скора органической выдачи
	WeightRating      = 0.4
	WeightReviewCount = 0.3
	WeightRecency     = 0.3

	// Чередование выдачи: 1 продвигаемый салон на OrganicRunLength органических
	OrganicRunLength = 3

	// Доли ставки, списываемые за показ и за клик
	ImpressionCostFraction = 0.10
	ClickCostFraction      = 0.50
)

// Ограничения рекламного кабинета
const (
	MinAuctionBid         = 50.0   // минимальная ставка за клик
	MinBudgetToBid        = 1000.0 // минимальный остаток бюджета для участия в аукционе
	MinBudgetTopUp        = 5000.0 // минимальная сумма пополнения
	MaxNotesLength        = 500
	MaxCancelReasonLength = 500
)

// Параметры пагинации каталога
const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не занимающие слот в расписании мастера
var InactiveStatuses = []BookingStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
}

// ActiveStatuses статусы, занимающие слот в расписании мастера
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
