package advertising

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	"github.com/jazyl-tech/JZL-BookingService/internal/integrations/salonservice"
	"github.com/jazyl-tech/JZL-BookingService/internal/service/advertising/models"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type stubSalonRepo struct {
	salon *domain.CatalogSalon

	budget     float64
	toppedUp   float64
	updatedBid *float64
}

func (s *stubSalonRepo) GetByID(ctx context.Context, id int64) (*domain.CatalogSalon, error) {
	return s.salon, nil
}

func (s *stubSalonRepo) TopUpBudget(ctx context.Context, salonID int64, amount float64) (float64, error) {
	s.toppedUp = amount
	s.budget += amount
	return s.budget, nil
}

func (s *stubSalonRepo) UpdateBid(ctx context.Context, salonID int64, bid float64) error {
	s.updatedBid = &bid
	return nil
}

type stubSalonClient struct {
	salon *salonservice.Salon
	err   error
}

func (s *stubSalonClient) GetSalon(ctx context.Context, salonID int64) (*salonservice.Salon, error) {
	return s.salon, s.err
}

const managerID = int64(99)

func testSalonClient() *stubSalonClient {
	return &stubSalonClient{
		salon: &salonservice.Salon{
			ID:         5,
			ManagerIDs: []int64{managerID},
			IsActive:   true,
		},
	}
}

func TestTopUp(t *testing.T) {
	repo := &stubSalonRepo{budget: 1000}
	svc := NewService(repo, testSalonClient(), stubLogger{})

	resp, err := svc.TopUp(context.Background(), &models.TopUpRequest{
		UserID:  managerID,
		SalonID: 5,
		Amount:  5000,
	})
	require.NoError(t, err)

	assert.Equal(t, 5000.0, repo.toppedUp)
	assert.Equal(t, 6000.0, resp.AdvertisingBudget)
}

func TestTopUp_BelowMinimum(t *testing.T) {
	svc := NewService(&stubSalonRepo{}, testSalonClient(), stubLogger{})

	_, err := svc.TopUp(context.Background(), &models.TopUpRequest{
		UserID:  managerID,
		SalonID: 5,
		Amount:  domain.MinBudgetTopUp - 1,
	})
	assert.ErrorIs(t, err, ErrAmountTooSmall)
}

func TestTopUp_NotManager(t *testing.T) {
	repo := &stubSalonRepo{}
	svc := NewService(repo, testSalonClient(), stubLogger{})

	_, err := svc.TopUp(context.Background(), &models.TopUpRequest{
		UserID:  1,
		SalonID: 5,
		Amount:  5000,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.toppedUp)
}

func TestUpdateBid(t *testing.T) {
	repo := &stubSalonRepo{
		salon: &domain.CatalogSalon{ID: 5, AdvertisingBudget: 5000},
	}
	svc := NewService(repo, testSalonClient(), stubLogger{})

	resp, err := svc.UpdateBid(context.Background(), &models.UpdateBidRequest{
		UserID:  managerID,
		SalonID: 5,
		Bid:     150,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.updatedBid)
	assert.Equal(t, 150.0, *repo.updatedBid)
	assert.Equal(t, 150.0, resp.AuctionBid)
}

func TestUpdateBid_ZeroRemovesFromAuction(t *testing.T) {
	// Снятие с аукциона допустимо при любом остатке бюджета
	repo := &stubSalonRepo{
		salon: &domain.CatalogSalon{ID: 5, AdvertisingBudget: 0},
	}
	svc := NewService(repo, testSalonClient(), stubLogger{})

	resp, err := svc.UpdateBid(context.Background(), &models.UpdateBidRequest{
		UserID:  managerID,
		SalonID: 5,
		Bid:     0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.AuctionBid)
}

func TestUpdateBid_Limits(t *testing.T) {
	tests := []struct {
		name    string
		bid     float64
		budget  float64
		wantErr error
	}{
		{name: "negative bid", bid: -10, budget: 5000, wantErr: ErrInvalidInput},
		{name: "bid below minimum", bid: domain.MinAuctionBid - 1, budget: 5000, wantErr: ErrBidTooSmall},
		{name: "budget too low to bid", bid: 100, budget: domain.MinBudgetToBid - 1, wantErr: ErrBudgetTooLow},
		{name: "bid at minimum", bid: domain.MinAuctionBid, budget: domain.MinBudgetToBid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubSalonRepo{
				salon: &domain.CatalogSalon{ID: 5, AdvertisingBudget: tt.budget},
			}
			svc := NewService(repo, testSalonClient(), stubLogger{})

			_, err := svc.UpdateBid(context.Background(), &models.UpdateBidRequest{
				UserID:  managerID,
				SalonID: 5,
				Bid:     tt.bid,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateBid_SalonNotFound(t *testing.T) {
	repo := &stubSalonRepo{}
	client := &stubSalonClient{err: salonservice.ErrSalonNotFound}
	svc := NewService(repo, client, stubLogger{})

	_, err := svc.UpdateBid(context.Background(), &models.UpdateBidRequest{
		UserID:  managerID,
		SalonID: 404,
		Bid:     100,
	})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}
