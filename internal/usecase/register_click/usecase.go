package register_click

import (
	"context"
	"errors"
	"fmt"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	salonStorage "github.com/jazyl-tech/JZL-BookingService/internal/infra/storage/salon"
)

// UseCase use case регистрации перехода на страницу салона из каталога
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

// Execute регистрирует клик и списывает плату за переход для продвигаемого салона
//
// Клик записывается всегда, даже если списание не удалось: факт перехода
// первичен для аналитики, а сбой биллинга не должен терять событие
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("RegisterClick: salon=%d", req.SalonID)

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonStorage.ErrSalonNotFound) {
			uc.logger.Warn("RegisterClick: salon id=%d not found", req.SalonID)
			return ErrSalonNotFound
		}
		uc.logger.Error("RegisterClick: failed to get salon id=%d: %v", req.SalonID, err)
		return fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	click := &domain.CatalogClick{
		SalonID:    salon.ID,
		ClickedAt:  uc.timeProvider.Now(),
		IsPromoted: salon.IsPromoted(),
		SessionID:  req.SessionID,
	}

	if click.IsPromoted {
		cost := salon.AuctionBid * domain.ClickCostFraction

		err := uc.salonRepo.ChargeBudget(ctx, salon.ID, cost)
		switch {
		case err == nil:
			click.Cost = cost
		case errors.Is(err, salonStorage.ErrInsufficientBudget):
			uc.logger.Info("RegisterClick: salon id=%d budget exhausted, demoting to organic", salon.ID)
			if demoteErr := uc.salonRepo.DemoteToOrganic(ctx, salon.ID); demoteErr != nil {
				uc.logger.Error("RegisterClick: failed to demote salon id=%d: %v", salon.ID, demoteErr)
			}
		default:
			uc.logger.Error("RegisterClick: failed to charge salon id=%d: %v", salon.ID, err)
		}
	}

	if err := uc.catalogRepo.CreateClick(ctx, click); err != nil {
		uc.logger.Error("RegisterClick: failed to record click for salon id=%d: %v", salon.ID, err)
		return fmt.Errorf("%w: failed to record click: %v", ErrInternal, err)
	}

	uc.logger.Info("RegisterClick: recorded click for salon=%d, promoted=%t, cost=%.2f",
		salon.ID, click.IsPromoted, click.Cost)

	return nil
}
