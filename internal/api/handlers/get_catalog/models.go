package get_catalog

import (
	"strconv"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	getCatalog "github.com/jazyl-tech/JZL-BookingService/internal/usecase/get_catalog"
)

// CatalogItem элемент выдачи каталога
type CatalogItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	City         string  `json:"city"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`
	IsPromoted   bool    `json:"is_promoted"`
	Position     int     `json:"position"`
}

// CatalogResponse HTTP response model страницы каталога
type CatalogResponse struct {
	Items      []CatalogItem `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalPages int           `json:"total_pages"`
}

// ToUseCaseRequest формирует запрос use case из query параметров
func ToUseCaseRequest(
	categoryIDStr string,
	city string,
	search string,
	sortStr string,
	pageStr string,
	perPageStr string,
) (*getCatalog.Request, error) {
	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		return nil, err
	}

	// Отсутствующие page/per_page - значения по умолчанию,
	// явные некорректные значения уходят в use case как есть
	req := &getCatalog.Request{
		CategoryID: categoryID,
		Sort:       domain.CatalogSort(sortStr),
		Page:       1,
		PerPage:    domain.DefaultPerPage,
	}

	if city != "" {
		req.City = &city
	}
	if search != "" {
		req.Search = &search
	}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, err
		}
		req.Page = page
	}

	if perPageStr != "" {
		perPage, err := strconv.Atoi(perPageStr)
		if err != nil {
			return nil, err
		}
		req.PerPage = perPage
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCatalog.Response) *CatalogResponse {
	items := make([]CatalogItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = CatalogItem{
			ID:           item.ID,
			Name:         item.Name,
			Description:  item.Description,
			City:         item.City,
			Rating:       item.Rating,
			TotalReviews: item.TotalReviews,
			IsPromoted:   item.IsPromoted,
			Position:     item.Position,
		}
	}

	return &CatalogResponse{
		Items:      items,
		Total:      resp.Total,
		Page:       resp.Page,
		PerPage:    resp.PerPage,
		TotalPages: resp.TotalPages,
	}
}
