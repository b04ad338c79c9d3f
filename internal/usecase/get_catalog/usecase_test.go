package get_catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	salonStorage "github.com/jazyl-tech/JZL-BookingService/internal/infra/storage/salon"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubSalonRepo struct {
	salons []*domain.CatalogSalon

	chargeErr  map[int64]error
	charged    map[int64]float64
	demoted    []int64
	listCalled int
}

func (s *stubSalonRepo) ListEligible(ctx context.Context, filter domain.CatalogFilter) ([]*domain.CatalogSalon, error) {
	s.listCalled++
	return s.salons, nil
}

func (s *stubSalonRepo) ChargeBudget(ctx context.Context, salonID int64, cost float64) error {
	if err, ok := s.chargeErr[salonID]; ok {
		return err
	}
	if s.charged == nil {
		s.charged = make(map[int64]float64)
	}
	s.charged[salonID] += cost
	return nil
}

func (s *stubSalonRepo) DemoteToOrganic(ctx context.Context, salonID int64) error {
	s.demoted = append(s.demoted, salonID)
	return nil
}

type stubCatalogRepo struct {
	impressions []*domain.CatalogImpression
	err         error
}

func (s *stubCatalogRepo) CreateImpressions(ctx context.Context, impressions []*domain.CatalogImpression) error {
	if s.err != nil {
		return s.err
	}
	s.impressions = append(s.impressions, impressions...)
	return nil
}

func catalogSalons() []*domain.CatalogSalon {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*domain.CatalogSalon{
		{ID: 1, CategoryID: 5, Name: "Люкс", Rating: 4.9, TotalReviews: 200, AuctionBid: 100, AdvertisingBudget: 5000, CreatedAt: base},
		{ID: 2, CategoryID: 5, Name: "Обычный", Rating: 4.2, TotalReviews: 50, CreatedAt: base.AddDate(0, 1, 0)},
		{ID: 3, CategoryID: 5, Name: "Новый", Rating: 4.7, TotalReviews: 10, CreatedAt: base.AddDate(0, 2, 0)},
	}
}

func TestExecute_PageAssembly(t *testing.T) {
	repo := &stubSalonRepo{salons: catalogSalons()}
	uc := NewUseCase(repo, &stubCatalogRepo{}, stubLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 7, 15, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{CategoryID: 5, Page: 1, PerPage: domain.DefaultPerPage})
	require.NoError(t, err)

	require.Len(t, resp.Items, 3)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, domain.DefaultPerPage, resp.PerPage)
	assert.Equal(t, 1, resp.TotalPages)

	// Продвигаемый салон первый, позиции сквозные с 1
	assert.Equal(t, int64(1), resp.Items[0].ID)
	assert.True(t, resp.Items[0].IsPromoted)
	assert.Equal(t, 1, resp.Items[0].Position)
	assert.False(t, resp.Items[1].IsPromoted)
	assert.Equal(t, 2, resp.Items[1].Position)
}

func TestExecute_Pagination(t *testing.T) {
	salons := make([]*domain.CatalogSalon, 0, 45)
	for i := int64(1); i <= 45; i++ {
		salons = append(salons, &domain.CatalogSalon{ID: i, CategoryID: 5, Rating: 4.0})
	}
	repo := &stubSalonRepo{salons: salons}
	uc := NewUseCase(repo, &stubCatalogRepo{}, stubLogger{})
	uc.timeProvider = fixedTime{now: time.Now()}

	resp, err := uc.Execute(context.Background(), &Request{CategoryID: 5, Page: 3, PerPage: 20})
	require.NoError(t, err)

	assert.Len(t, resp.Items, 5)
	assert.Equal(t, 45, resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 3, resp.Page)
}

func TestExecute_PerPageCapped(t *testing.T) {
	repo := &stubSalonRepo{salons: catalogSalons()}
	uc := NewUseCase(repo, &stubCatalogRepo{}, stubLogger{})
	uc.timeProvider = fixedTime{now: time.Now()}

	resp, err := uc.Execute(context.Background(), &Request{CategoryID: 5, Page: 1, PerPage: 500})
	require.NoError(t, err)
	assert.Equal(t, domain.MaxPerPage, resp.PerPage)
}

func TestExecute_NonPositivePagination(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
	}{
		{name: "отрицательная страница", page: -1, perPage: 20},
		{name: "нулевая страница", page: 0, perPage: 20},
		{name: "отрицательный размер страницы", page: 1, perPage: -5},
		{name: "нулевой размер страницы", page: 1, perPage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubSalonRepo{salons: catalogSalons()}
			catalogRepo := &stubCatalogRepo{}
			uc := NewUseCase(repo, catalogRepo, stubLogger{})
			uc.timeProvider = fixedTime{now: time.Now()}

			resp, err := uc.Execute(context.Background(), &Request{
				CategoryID: 5,
				Page:       tt.page,
				PerPage:    tt.perPage,
			})

			// Пустая выдача с точными итогами, без ошибки
			require.NoError(t, err)
			assert.Empty(t, resp.Items)
			assert.Equal(t, 3, resp.Total)
			assert.Equal(t, 1, resp.TotalPages)

			// Показы по несуществующей странице не регистрируются
			assert.Empty(t, catalogRepo.impressions)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubSalonRepo{}, &stubCatalogRepo{}, stubLogger{})
	uc.timeProvider = fixedTime{now: time.Now()}

	_, err := uc.Execute(context.Background(), &Request{CategoryID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CategoryID: 5, Sort: "price"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBillImpressions_ChargesPromotedOnly(t *testing.T) {
	now := time.Date(2026, 9, 7, 15, 30, 0, 0, time.UTC)
	repo := &stubSalonRepo{}
	catalogRepo := &stubCatalogRepo{}
	uc := NewUseCase(repo, catalogRepo, stubLogger{})

	page := []rankedSalon{
		{salon: &domain.CatalogSalon{ID: 1, AuctionBid: 100, AdvertisingBudget: 5000}, promoted: true},
		{salon: &domain.CatalogSalon{ID: 2}},
		{salon: &domain.CatalogSalon{ID: 3}},
	}

	uc.billImpressions(page, 0, now)

	// Показ стоит 10% ставки
	assert.Equal(t, map[int64]float64{1: 10}, repo.charged)

	require.Len(t, catalogRepo.impressions, 3)
	first := catalogRepo.impressions[0]
	assert.Equal(t, int64(1), first.SalonID)
	assert.True(t, first.IsPromoted)
	assert.Equal(t, 10.0, first.Cost)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 15, first.ImpressionHour)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), first.ImpressionDate)

	// Органические показы записываются с нулевой стоимостью
	assert.False(t, catalogRepo.impressions[1].IsPromoted)
	assert.Equal(t, 0.0, catalogRepo.impressions[1].Cost)
}

func TestBillImpressions_InsufficientBudgetDemotes(t *testing.T) {
	now := time.Now()
	repo := &stubSalonRepo{
		chargeErr: map[int64]error{1: salonStorage.ErrInsufficientBudget},
	}
	catalogRepo := &stubCatalogRepo{}
	uc := NewUseCase(repo, catalogRepo, stubLogger{})

	page := []rankedSalon{
		{salon: &domain.CatalogSalon{ID: 1, AuctionBid: 100, AdvertisingBudget: 3}, promoted: true},
	}

	uc.billImpressions(page, 0, now)

	assert.Equal(t, []int64{1}, repo.demoted)

	// Показ записан, но бесплатно
	require.Len(t, catalogRepo.impressions, 1)
	assert.Equal(t, 0.0, catalogRepo.impressions[0].Cost)
}

func TestBillImpressions_ChargeFailureDoesNotPanic(t *testing.T) {
	repo := &stubSalonRepo{
		chargeErr: map[int64]error{1: errors.New("db down")},
	}
	uc := NewUseCase(repo, &stubCatalogRepo{err: errors.New("db down")}, stubLogger{})

	page := []rankedSalon{
		{salon: &domain.CatalogSalon{ID: 1, AuctionBid: 100, AdvertisingBudget: 5000}, promoted: true},
	}

	// Ошибки биллинга только логируются
	uc.billImpressions(page, 0, time.Now())
	assert.Empty(t, repo.demoted)
}

func TestBillImpressions_PositionsSpanPages(t *testing.T) {
	now := time.Date(2026, 9, 7, 15, 30, 0, 0, time.UTC)
	repo := &stubSalonRepo{}
	catalogRepo := &stubCatalogRepo{}
	uc := NewUseCase(repo, catalogRepo, stubLogger{})

	// Вторая страница при per_page=20: позиции продолжают нумерацию выдачи
	page := []rankedSalon{
		{salon: &domain.CatalogSalon{ID: 7, AuctionBid: 100, AdvertisingBudget: 5000}, promoted: true},
		{salon: &domain.CatalogSalon{ID: 8}},
	}

	uc.billImpressions(page, 20, now)

	require.Len(t, catalogRepo.impressions, 2)
	assert.Equal(t, 21, catalogRepo.impressions[0].Position)
	assert.Equal(t, 22, catalogRepo.impressions[1].Position)
}
