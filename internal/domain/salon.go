package domain

import "time"

// CatalogSalon витринная проекция салона для каталога
// Рейтинг и счетчик отзывов пересчитываются внешним сервисом отзывов;
// здесь они только читаются для ранжирования
type CatalogSalon struct {
	ID          int64
	CategoryID  int64
	Name        string
	Description string
	City        string

	Rating       float64
	TotalReviews int

	// Состояние продвижения: ставка аукциона и остаток рекламного бюджета
	// Бюджет только убывает при списаниях и не может стать отрицательным
	AuctionBid        float64
	AdvertisingBudget float64

	IsActive           bool
	IsVisibleInCatalog bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPromoted возвращает true, если салон участвует в аукционе
// Требуется активная положительная ставка и ненулевой остаток бюджета
func (s *CatalogSalon) IsPromoted() bool {
	return s.AuctionBid > 0 && s.AdvertisingBudget > 0
}

// CatalogFilter фильтр выборки салонов каталога
type CatalogFilter struct {
	CategoryID int64   // Обязательный параметр
	City       *string // Точное совпадение города (опционально)
	Search     *string // Подстрочный поиск по названию и описанию (опционально)
}

// CatalogSort порядок сортировки органической выдачи
type CatalogSort string

const (
	SortRelevance CatalogSort = "relevance" // композитный скор (по умолчанию)
	SortRating    CatalogSort = "rating"
	SortRecent    CatalogSort = "recent"
)

// ValidCatalogSort проверяет допустимость значения sort
func ValidCatalogSort(s CatalogSort) bool {
	switch s {
	case SortRelevance, SortRating, SortRecent:
		return true
	default:
		return false
	}
}
