package register_click

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
	salon     *domain.CatalogSalon
	getErr    error
	chargeErr error
	charged   float64
	demoted   bool
}

func (s *stubSalonRepo) GetByID(ctx context.Context, id int64) (*domain.CatalogSalon, error) {
	return s.salon, s.getErr
}

func (s *stubSalonRepo) ChargeBudget(ctx context.Context, salonID int64, cost float64) error {
	if s.chargeErr != nil {
		return s.chargeErr
	}
	s.charged += cost
	return nil
}

func (s *stubSalonRepo) DemoteToOrganic(ctx context.Context, salonID int64) error {
	s.demoted = true
	return nil
}

type stubCatalogRepo struct {
	click *domain.CatalogClick
	err   error
}

func (s *stubCatalogRepo) CreateClick(ctx context.Context, click *domain.CatalogClick) error {
	if s.err != nil {
		return s.err
	}
	s.click = click
	return nil
}

func newTestUseCase(salonRepo *stubSalonRepo, catalogRepo *stubCatalogRepo) *UseCase {
	uc := NewUseCase(salonRepo, catalogRepo, stubLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_PromotedClickCharged(t *testing.T) {
	repo := &stubSalonRepo{
		salon: &domain.CatalogSalon{ID: 1, AuctionBid: 100, AdvertisingBudget: 5000},
	}
	catalogRepo := &stubCatalogRepo{}
	uc := newTestUseCase(repo, catalogRepo)

	err := uc.Execute(context.Background(), &Request{SalonID: 1})
	require.NoError(t, err)

	// Клик стоит 50% ставки
	assert.Equal(t, 50.0, repo.charged)

	require.NotNil(t, catalogRepo.click)
	assert.True(t, catalogRepo.click.IsPromoted)
	assert.Equal(t, 50.0, catalogRepo.click.Cost)
}

func TestExecute_OrganicClickFree(t *testing.T) {
	sessionID := "sess-1"
	repo := &stubSalonRepo{
		salon: &domain.CatalogSalon{ID: 2},
	}
	catalogRepo := &stubCatalogRepo{}
	uc := newTestUseCase(repo, catalogRepo)

	err := uc.Execute(context.Background(), &Request{SalonID: 2, SessionID: &sessionID})
	require.NoError(t, err)

	assert.Equal(t, 0.0, repo.charged)

	require.NotNil(t, catalogRepo.click)
	assert.False(t, catalogRepo.click.IsPromoted)
	assert.Equal(t, 0.0, catalogRepo.click.Cost)
	require.NotNil(t, catalogRepo.click.SessionID)
	assert.Equal(t, "sess-1", *catalogRepo.click.SessionID)
}

func TestExecute_InsufficientBudgetDemotes(t *testing.T) {
	repo := &stubSalonRepo{
		salon:     &domain.CatalogSalon{ID: 1, AuctionBid: 100, AdvertisingBudget: 10},
		chargeErr: salonStorage.ErrInsufficientBudget,
	}
	catalogRepo := &stubCatalogRepo{}
	uc := newTestUseCase(repo, catalogRepo)

	err := uc.Execute(context.Background(), &Request{SalonID: 1})
	require.NoError(t, err)

	assert.True(t, repo.demoted)

	// Клик записан бесплатным, но с признаком продвижения на момент показа
	require.NotNil(t, catalogRepo.click)
	assert.True(t, catalogRepo.click.IsPromoted)
	assert.Equal(t, 0.0, catalogRepo.click.Cost)
}

func TestExecute_ChargeFailureStillRecordsClick(t *testing.T) {
	repo := &stubSalonRepo{
		salon:     &domain.CatalogSalon{ID: 1, AuctionBid: 100, AdvertisingBudget: 5000},
		chargeErr: errors.New("db down"),
	}
	catalogRepo := &stubCatalogRepo{}
	uc := newTestUseCase(repo, catalogRepo)

	err := uc.Execute(context.Background(), &Request{SalonID: 1})
	require.NoError(t, err)

	assert.False(t, repo.demoted)
	require.NotNil(t, catalogRepo.click)
	assert.Equal(t, 0.0, catalogRepo.click.Cost)
}

func TestExecute_SalonNotFound(t *testing.T) {
	repo := &stubSalonRepo{getErr: salonStorage.ErrSalonNotFound}
	uc := newTestUseCase(repo, &stubCatalogRepo{})

	err := uc.Execute(context.Background(), &Request{SalonID: 99})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_RecordFailureIsError(t *testing.T) {
	repo := &stubSalonRepo{salon: &domain.CatalogSalon{ID: 1}}
	catalogRepo := &stubCatalogRepo{err: errors.New("db down")}
	uc := newTestUseCase(repo, catalogRepo)

	err := uc.Execute(context.Background(), &Request{SalonID: 1})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidSalonID(t *testing.T) {
	uc := newTestUseCase(&stubSalonRepo{}, &stubCatalogRepo{})

	err := uc.Execute(context.Background(), &Request{SalonID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
