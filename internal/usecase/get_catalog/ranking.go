package get_catalog

import (
	"sort"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
)

// rankedSalon салон в выдаче с зафиксированным признаком продвижения
// Признак фиксируется в момент ранжирования: дальнейший биллинг страницы
// опирается на него, а не на повторное чтение из БД
type rankedSalon struct {
	salon    *domain.CatalogSalon
	promoted bool
}

// rankSalons строит полную выдачу каталога: продвигаемые салоны по аукциону,
// органические по выбранной сортировке, чередование 1 к domain.OrganicRunLength
func rankSalons(salons []*domain.CatalogSalon, sortMode domain.CatalogSort) []rankedSalon {
	promoted := make([]*domain.CatalogSalon, 0, len(salons))
	organic := make([]*domain.CatalogSalon, 0, len(salons))

	for _, s := range salons {
		if s.IsPromoted() {
			promoted = append(promoted, s)
		} else {
			organic = append(organic, s)
		}
	}

	sortPromoted(promoted)
	sortOrganic(organic, sortMode)

	return interleave(promoted, organic)
}

// sortPromoted упорядочивает аукционную выдачу: ставка, затем рейтинг, затем ID
// Сортировка детерминирована - при равных ставках и рейтингах решает ID
func sortPromoted(salons []*domain.CatalogSalon) {
	sort.Slice(salons, func(i, j int) bool {
		a, b := salons[i], salons[j]
		if a.AuctionBid != b.AuctionBid {
			return a.AuctionBid > b.AuctionBid
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.ID < b.ID
	})
}

// sortOrganic упорядочивает органическую выдачу по выбранному режиму
func sortOrganic(salons []*domain.CatalogSalon, sortMode domain.CatalogSort) {
	switch sortMode {
	case domain.SortRating:
		sort.Slice(salons, func(i, j int) bool {
			a, b := salons[i], salons[j]
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			if a.TotalReviews != b.TotalReviews {
				return a.TotalReviews > b.TotalReviews
			}
			return a.ID < b.ID
		})
	case domain.SortRecent:
		sort.Slice(salons, func(i, j int) bool {
			a, b := salons[i], salons[j]
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID < b.ID
		})
	default:
		scores := compositeScores(salons)
		sort.Slice(salons, func(i, j int) bool {
			a, b := salons[i], salons[j]
			if scores[a.ID] != scores[b.ID] {
				return scores[a.ID] > scores[b.ID]
			}
			return a.ID < b.ID
		})
	}
}

// compositeScores вычисляет композитный скор релевантности для каждого салона
//
// Скор = 0.4*рейтинг + 0.3*число отзывов + 0.3*свежесть, где каждая компонента
// min-max нормализована по текущей выборке. Вырожденная компонента (все значения
// равны) дает 0 всем - на порядок она не влияет
func compositeScores(salons []*domain.CatalogSalon) map[int64]float64 {
	scores := make(map[int64]float64, len(salons))
	if len(salons) == 0 {
		return scores
	}

	minRating, maxRating := salons[0].Rating, salons[0].Rating
	minReviews, maxReviews := salons[0].TotalReviews, salons[0].TotalReviews
	minCreated, maxCreated := salons[0].CreatedAt.Unix(), salons[0].CreatedAt.Unix()

	for _, s := range salons[1:] {
		if s.Rating < minRating {
			minRating = s.Rating
		}
		if s.Rating > maxRating {
			maxRating = s.Rating
		}
		if s.TotalReviews < minReviews {
			minReviews = s.TotalReviews
		}
		if s.TotalReviews > maxReviews {
			maxReviews = s.TotalReviews
		}
		created := s.CreatedAt.Unix()
		if created < minCreated {
			minCreated = created
		}
		if created > maxCreated {
			maxCreated = created
		}
	}

	for _, s := range salons {
		score := domain.WeightRating*normalize(s.Rating, minRating, maxRating) +
			domain.WeightReviewCount*normalize(float64(s.TotalReviews), float64(minReviews), float64(maxReviews)) +
			domain.WeightRecency*normalize(float64(s.CreatedAt.Unix()), float64(minCreated), float64(maxCreated))
		scores[s.ID] = score
	}

	return scores
}

// normalize приводит значение к [0, 1] относительно выборки
func normalize(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}

// interleave чередует выдачу: 1 продвигаемый салон, затем domain.OrganicRunLength
// органических; исчерпанный список добивается остатком другого
func interleave(promoted, organic []*domain.CatalogSalon) []rankedSalon {
	result := make([]rankedSalon, 0, len(promoted)+len(organic))
	pi, oi := 0, 0

	for pi < len(promoted) && oi < len(organic) {
		result = append(result, rankedSalon{salon: promoted[pi], promoted: true})
		pi++

		for k := 0; k < domain.OrganicRunLength && oi < len(organic); k++ {
			result = append(result, rankedSalon{salon: organic[oi]})
			oi++
		}
	}

	for ; pi < len(promoted); pi++ {
		result = append(result, rankedSalon{salon: promoted[pi], promoted: true})
	}
	for ; oi < len(organic); oi++ {
		result = append(result, rankedSalon{salon: organic[oi]})
	}

	return result
}

// paginate возвращает срез выдачи для страницы (нумерация с 1)
func paginate(ranked []rankedSalon, page, perPage int) []rankedSalon {
	start := (page - 1) * perPage
	if start >= len(ranked) {
		return nil
	}
	end := start + perPage
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[start:end]
}
