package get_catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
)

func organicSalon(id int64, rating float64, reviews int, createdAt time.Time) *domain.CatalogSalon {
	return &domain.CatalogSalon{
		ID:           id,
		Rating:       rating,
		TotalReviews: reviews,
		CreatedAt:    createdAt,
	}
}

func promotedSalon(id int64, bid, budget, rating float64) *domain.CatalogSalon {
	return &domain.CatalogSalon{
		ID:                id,
		Rating:            rating,
		AuctionBid:        bid,
		AdvertisingBudget: budget,
	}
}

func ids(ranked []rankedSalon) []int64 {
	result := make([]int64, len(ranked))
	for i, rs := range ranked {
		result[i] = rs.salon.ID
	}
	return result
}

func TestRankSalons_Partition(t *testing.T) {
	salons := []*domain.CatalogSalon{
		promotedSalon(1, 100, 5000, 4.5),
		// Ставка есть, бюджет исчерпан - органика
		{ID: 2, AuctionBid: 100, AdvertisingBudget: 0, Rating: 4.9},
		// Бюджет есть, ставка нулевая - органика
		{ID: 3, AuctionBid: 0, AdvertisingBudget: 5000, Rating: 4.8},
	}

	ranked := rankSalons(salons, domain.SortRating)

	require.Len(t, ranked, 3)
	assert.True(t, ranked[0].promoted)
	assert.Equal(t, int64(1), ranked[0].salon.ID)
	assert.False(t, ranked[1].promoted)
	assert.False(t, ranked[2].promoted)
}

func TestSortPromoted(t *testing.T) {
	salons := []*domain.CatalogSalon{
		promotedSalon(3, 100, 5000, 4.0),
		promotedSalon(1, 200, 5000, 3.5),
		promotedSalon(2, 100, 5000, 4.5),
		promotedSalon(4, 100, 5000, 4.0),
	}

	sortPromoted(salons)

	// Ставка по убыванию, при равных рейтинг, при равных ID по возрастанию
	got := make([]int64, len(salons))
	for i, s := range salons {
		got[i] = s.ID
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, got)
}

func TestSortOrganic_ByRating(t *testing.T) {
	now := time.Now()
	salons := []*domain.CatalogSalon{
		organicSalon(1, 4.0, 10, now),
		organicSalon(2, 4.8, 5, now),
		organicSalon(3, 4.8, 50, now),
	}

	sortOrganic(salons, domain.SortRating)

	assert.Equal(t, int64(3), salons[0].ID) // рейтинг равен, отзывов больше
	assert.Equal(t, int64(2), salons[1].ID)
	assert.Equal(t, int64(1), salons[2].ID)
}

func TestSortOrganic_ByRecent(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	salons := []*domain.CatalogSalon{
		organicSalon(1, 4.0, 10, base),
		organicSalon(2, 3.0, 0, base.AddDate(0, 6, 0)),
		organicSalon(3, 5.0, 99, base.AddDate(0, 1, 0)),
	}

	sortOrganic(salons, domain.SortRecent)

	assert.Equal(t, int64(2), salons[0].ID)
	assert.Equal(t, int64(3), salons[1].ID)
	assert.Equal(t, int64(1), salons[2].ID)
}

func TestSortOrganic_ByRelevance(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	salons := []*domain.CatalogSalon{
		// Лучший по всем трем компонентам
		organicSalon(1, 5.0, 100, base.AddDate(0, 6, 0)),
		// Худший по всем трем
		organicSalon(2, 3.0, 0, base),
		// Посередине
		organicSalon(3, 4.0, 50, base.AddDate(0, 3, 0)),
	}

	sortOrganic(salons, domain.SortRelevance)

	assert.Equal(t, int64(1), salons[0].ID)
	assert.Equal(t, int64(3), salons[1].ID)
	assert.Equal(t, int64(2), salons[2].ID)
}

func TestCompositeScores_DegenerateComponent(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// Все компоненты одинаковы: скор у всех 0, порядок решает ID
	salons := []*domain.CatalogSalon{
		organicSalon(2, 4.5, 10, now),
		organicSalon(1, 4.5, 10, now),
	}

	scores := compositeScores(salons)
	assert.Equal(t, 0.0, scores[1])
	assert.Equal(t, 0.0, scores[2])

	sortOrganic(salons, domain.SortRelevance)
	assert.Equal(t, int64(1), salons[0].ID)
	assert.Equal(t, int64(2), salons[1].ID)
}

func TestInterleave(t *testing.T) {
	promoted := []*domain.CatalogSalon{
		promotedSalon(101, 200, 5000, 4.0),
		promotedSalon(102, 100, 5000, 4.0),
	}
	organic := []*domain.CatalogSalon{
		organicSalon(1, 4.0, 0, time.Time{}),
		organicSalon(2, 4.0, 0, time.Time{}),
		organicSalon(3, 4.0, 0, time.Time{}),
		organicSalon(4, 4.0, 0, time.Time{}),
		organicSalon(5, 4.0, 0, time.Time{}),
	}

	ranked := interleave(promoted, organic)

	// P O O O P O O
	assert.Equal(t, []int64{101, 1, 2, 3, 102, 4, 5}, ids(ranked))
	assert.True(t, ranked[0].promoted)
	assert.True(t, ranked[4].promoted)
}

func TestInterleave_OnlyPromoted(t *testing.T) {
	promoted := []*domain.CatalogSalon{
		promotedSalon(1, 200, 5000, 4.0),
		promotedSalon(2, 100, 5000, 4.0),
	}

	ranked := interleave(promoted, nil)
	assert.Equal(t, []int64{1, 2}, ids(ranked))
}

func TestInterleave_OnlyOrganic(t *testing.T) {
	organic := []*domain.CatalogSalon{
		organicSalon(1, 4.0, 0, time.Time{}),
		organicSalon(2, 4.0, 0, time.Time{}),
	}

	ranked := interleave(nil, organic)
	assert.Equal(t, []int64{1, 2}, ids(ranked))
}

func TestInterleave_PromotedSurplusDrained(t *testing.T) {
	promoted := []*domain.CatalogSalon{
		promotedSalon(1, 300, 5000, 4.0),
		promotedSalon(2, 200, 5000, 4.0),
		promotedSalon(3, 100, 5000, 4.0),
	}
	organic := []*domain.CatalogSalon{
		organicSalon(10, 4.0, 0, time.Time{}),
	}

	ranked := interleave(promoted, organic)
	assert.Equal(t, []int64{1, 10, 2, 3}, ids(ranked))
}

func TestPaginate(t *testing.T) {
	ranked := make([]rankedSalon, 0, 5)
	for i := int64(1); i <= 5; i++ {
		ranked = append(ranked, rankedSalon{salon: &domain.CatalogSalon{ID: i}})
	}

	assert.Equal(t, []int64{1, 2}, ids(paginate(ranked, 1, 2)))
	assert.Equal(t, []int64{3, 4}, ids(paginate(ranked, 2, 2)))
	assert.Equal(t, []int64{5}, ids(paginate(ranked, 3, 2)))
	assert.Empty(t, paginate(ranked, 4, 2))
}
