package get_catalog

import "github.com/jazyl-tech/JZL-BookingService/internal/domain"

// Request модель запроса страницы каталога
type Request struct {
	CategoryID int64              // Обязательный параметр
	City       *string            // Фильтр по городу (опционально)
	Search     *string            // Подстрочный поиск по названию и описанию (опционально)
	Sort       domain.CatalogSort // Порядок органической выдачи (по умолчанию relevance)
	Page       int                // Номер страницы, начиная с 1; неположительный дает пустую выдачу
	PerPage    int                // Размер страницы; неположительный дает пустую выдачу
}

// Item элемент выдачи каталога
type Item struct {
	ID           int64
	Name         string
	Description  string
	City         string
	Rating       float64
	TotalReviews int
	IsPromoted   bool // помечается в выдаче как реклама
	Position     int  // позиция на странице, начиная с 1
}

// Response страница каталога с метаданными пагинации
type Response struct {
	Items      []Item
	Total      int // общее число салонов в выдаче до пагинации
	Page       int
	PerPage    int
	TotalPages int
}
