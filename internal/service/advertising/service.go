package advertising

import (
	"context"
	"errors"
	"fmt"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	salonStorage "github.com/jazyl-tech/JZL-BookingService/internal/infra/storage/salon"
	salonClient "github.com/jazyl-tech/JZL-BookingService/internal/integrations/salonservice"
	"github.com/jazyl-tech/JZL-BookingService/internal/service/advertising/models"
)

// Service сервис рекламного кабинета салона
// Управляет аукционной ставкой и рекламным бюджетом витринной проекции
type Service struct {
	salonRepo   SalonRepository
	salonClient SalonServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса рекламного кабинета
func NewService(
	salonRepo SalonRepository,
	salonClient SalonServiceClient,
	logger Logger,
) *Service {
	return &Service{
		salonRepo:   salonRepo,
		salonClient: salonClient,
		logger:      logger,
	}
}

// TopUp пополняет рекламный бюджет салона
// Доступно только менеджерам салона, сумма не меньше domain.MinBudgetTopUp
func (s *Service) TopUp(ctx context.Context, req *models.TopUpRequest) (*models.TopUpResponse, error) {
	s.logger.Info("TopUp: salon=%d, amount=%.2f, user=%d", req.SalonID, req.Amount, req.UserID)

	if req.Amount < domain.MinBudgetTopUp {
		s.logger.Warn("TopUp: amount %.2f is below minimum %.2f for salon=%d",
			req.Amount, domain.MinBudgetTopUp, req.SalonID)
		return nil, fmt.Errorf("%w: minimum top-up is %.0f", ErrAmountTooSmall, domain.MinBudgetTopUp)
	}

	if err := s.checkManagerAccess(ctx, req.SalonID, req.UserID); err != nil {
		return nil, err
	}

	newBudget, err := s.salonRepo.TopUpBudget(ctx, req.SalonID, req.Amount)
	if err != nil {
		if errors.Is(err, salonStorage.ErrSalonNotFound) {
			s.logger.Warn("TopUp: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("TopUp: repository error for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: TopUp - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("TopUp: salon=%d budget increased by %.2f, new balance=%.2f",
		req.SalonID, req.Amount, newBudget)

	return &models.TopUpResponse{
		SalonID:           req.SalonID,
		AdvertisingBudget: newBudget,
	}, nil
}

// UpdateBid устанавливает аукционную ставку салона
// Ставка либо нулевая (снятие с аукциона), либо не меньше domain.MinAuctionBid
// Для участия в аукционе остаток бюджета должен быть не меньше domain.MinBudgetToBid
func (s *Service) UpdateBid(ctx context.Context, req *models.UpdateBidRequest) (*models.UpdateBidResponse, error) {
	s.logger.Info("UpdateBid: salon=%d, bid=%.2f, user=%d", req.SalonID, req.Bid, req.UserID)

	if req.Bid < 0 {
		return nil, fmt.Errorf("%w: bid must not be negative", ErrInvalidInput)
	}
	if req.Bid > 0 && req.Bid < domain.MinAuctionBid {
		s.logger.Warn("UpdateBid: bid %.2f is below minimum %.2f for salon=%d",
			req.Bid, domain.MinAuctionBid, req.SalonID)
		return nil, fmt.Errorf("%w: minimum bid is %.0f", ErrBidTooSmall, domain.MinAuctionBid)
	}

	if err := s.checkManagerAccess(ctx, req.SalonID, req.UserID); err != nil {
		return nil, err
	}

	salon, err := s.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonStorage.ErrSalonNotFound) {
			s.logger.Warn("UpdateBid: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("UpdateBid: repository error for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: UpdateBid - repository error: %v", ErrInternal, err)
	}

	if req.Bid > 0 && salon.AdvertisingBudget < domain.MinBudgetToBid {
		s.logger.Warn("UpdateBid: salon=%d budget %.2f is below minimum %.2f to bid",
			req.SalonID, salon.AdvertisingBudget, domain.MinBudgetToBid)
		return nil, fmt.Errorf("%w: budget of at least %.0f is required", ErrBudgetTooLow, domain.MinBudgetToBid)
	}

	if err := s.salonRepo.UpdateBid(ctx, req.SalonID, req.Bid); err != nil {
		if errors.Is(err, salonStorage.ErrSalonNotFound) {
			s.logger.Warn("UpdateBid: salon id=%d not found during update", req.SalonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("UpdateBid: repository error for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: UpdateBid - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBid: salon=%d bid set to %.2f", req.SalonID, req.Bid)

	return &models.UpdateBidResponse{
		SalonID:    req.SalonID,
		AuctionBid: req.Bid,
	}, nil
}

// checkManagerAccess проверяет, что пользователь является менеджером салона
func (s *Service) checkManagerAccess(ctx context.Context, salonID int64, userID int64) error {
	salon, err := s.salonClient.GetSalon(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonClient.ErrSalonNotFound) {
			s.logger.Warn("checkManagerAccess: salon id=%d not found", salonID)
			return ErrSalonNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get salon id=%d: %v", salonID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get salon: %v", ErrInternal, err)
	}

	if salon.HasManager(userID) {
		return nil
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of salon=%d", userID, salonID)
	return ErrAccessDenied
}
