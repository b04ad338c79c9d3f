package get_catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	salonStorage "github.com/jazyl-tech/JZL-BookingService/internal/infra/storage/salon"
)

// billingTimeout ограничивает время фонового биллинга показов
// Биллинг выполняется вне жизненного цикла HTTP-запроса
const billingTimeout = 5 * time.Second

// UseCase use case выдачи страницы каталога
// Выдача строится заново на каждый запрос: ставки и бюджеты меняются
// между запросами, кешировать ранжирование нельзя
type UseCase struct {
	salonRepo    SalonRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(salonRepo SalonRepository, catalogRepo CatalogRepository, logger Logger) *UseCase {
	return &UseCase{
		salonRepo:    salonRepo,
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит страницу каталога и запускает фоновый биллинг показов
//
// Ошибки биллинга никогда не попадают клиенту: выдача страницы отвечает
// за UX, списания - за учет, и деградация учета не должна ломать каталог
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCatalog: category=%d, sort=%s, page=%d, per_page=%d",
		req.CategoryID, req.Sort, req.Page, req.PerPage)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCatalog: validation failed: %v", err)
		return nil, err
	}

	filter := domain.CatalogFilter{
		CategoryID: req.CategoryID,
		City:       req.City,
		Search:     req.Search,
	}

	salons, err := uc.salonRepo.ListEligible(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCatalog: failed to list salons: %v", err)
		return nil, fmt.Errorf("%w: failed to list salons: %v", ErrInternal, err)
	}

	ranked := rankSalons(salons, req.Sort)

	perPage := req.PerPage
	if perPage <= 0 {
		perPage = domain.DefaultPerPage
	}
	if perPage > domain.MaxPerPage {
		perPage = domain.MaxPerPage
	}

	total := len(ranked)
	totalPages := (total + perPage - 1) / perPage

	// Некорректная пагинация по контракту не ошибка:
	// пустая выдача с точными итогами, показы не регистрируются
	if req.Page <= 0 || req.PerPage <= 0 {
		uc.logger.Warn("GetCatalog: invalid pagination: page=%d, per_page=%d", req.Page, req.PerPage)
		return &Response{
			Items:      []Item{},
			Total:      total,
			Page:       req.Page,
			PerPage:    perPage,
			TotalPages: totalPages,
		}, nil
	}

	page := paginate(ranked, req.Page, perPage)

	items := make([]Item, 0, len(page))
	for i, rs := range page {
		items = append(items, Item{
			ID:           rs.salon.ID,
			Name:         rs.salon.Name,
			Description:  rs.salon.Description,
			City:         rs.salon.City,
			Rating:       rs.salon.Rating,
			TotalReviews: rs.salon.TotalReviews,
			IsPromoted:   rs.promoted,
			Position:     i + 1,
		})
	}

	uc.logger.Info("GetCatalog: category=%d, total=%d, page=%d/%d, promoted_on_page=%d",
		req.CategoryID, total, req.Page, totalPages, countPromoted(page))

	// Биллинг показов - после формирования ответа и вне контекста запроса.
	// Позиция показа сквозная по всей выдаче, а не внутри страницы
	if len(page) > 0 {
		go uc.billImpressions(page, (req.Page-1)*perPage, uc.timeProvider.Now())
	}

	return &Response{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// billImpressions списывает плату за продвигаемые показы и записывает
// все показы страницы
//
// Списание атомарно на уровне БД: UPDATE с условием на остаток бюджета.
// При нехватке бюджета салон снимается с аукциона (ставка обнуляется),
// показ записывается как органический с нулевой стоимостью
func (uc *UseCase) billImpressions(page []rankedSalon, offset int, now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), billingTimeout)
	defer cancel()

	impressionDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	impressions := make([]*domain.CatalogImpression, 0, len(page))

	for i, rs := range page {
		impression := &domain.CatalogImpression{
			SalonID:        rs.salon.ID,
			ImpressionDate: impressionDate,
			ImpressionHour: now.Hour(),
			Position:       offset + i + 1,
			IsPromoted:     rs.promoted,
		}

		if rs.promoted {
			cost := rs.salon.AuctionBid * domain.ImpressionCostFraction

			err := uc.salonRepo.ChargeBudget(ctx, rs.salon.ID, cost)
			switch {
			case err == nil:
				impression.Cost = cost
			case errors.Is(err, salonStorage.ErrInsufficientBudget):
				uc.logger.Info("GetCatalog: salon id=%d budget exhausted, demoting to organic", rs.salon.ID)
				if demoteErr := uc.salonRepo.DemoteToOrganic(ctx, rs.salon.ID); demoteErr != nil {
					uc.logger.Error("GetCatalog: failed to demote salon id=%d: %v", rs.salon.ID, demoteErr)
				}
			default:
				uc.logger.Error("GetCatalog: failed to charge salon id=%d: %v", rs.salon.ID, err)
			}
		}

		impressions = append(impressions, impression)
	}

	if err := uc.catalogRepo.CreateImpressions(ctx, impressions); err != nil {
		uc.logger.Error("GetCatalog: failed to record %d impressions: %v", len(impressions), err)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CategoryID <= 0 {
		return fmt.Errorf("%w: categoryID must be positive", ErrInvalidInput)
	}

	if req.Sort == "" {
		req.Sort = domain.SortRelevance
	}
	if !domain.ValidCatalogSort(req.Sort) {
		return fmt.Errorf("%w: unknown sort %q", ErrInvalidInput, req.Sort)
	}

	return nil
}

// countPromoted считает продвигаемые позиции на странице
func countPromoted(page []rankedSalon) int {
	count := 0
	for _, rs := range page {
		if rs.promoted {
			count++
		}
	}
	return count
}
