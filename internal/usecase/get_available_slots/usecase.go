package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	"github.com/jazyl-tech/JZL-BookingService/internal/integrations/salonservice"
	"github.com/jazyl-tech/JZL-BookingService/pkg/ptr"
)

// UseCase use case расчета доступных слотов для записи к мастеру
// Возвращаемый список - подсказка клиенту, а не резервация:
// авторитетная проверка повторяется при создании бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	salonClient  SalonServiceClient
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	salonClient SalonServiceClient,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		salonClient:  salonClient,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute вычисляет доступные слоты мастера на дату
//
// Алгоритм:
//  1. Рабочие интервалы дня: исключение на дату либо недельное расписание минус перерывы
//  2. Дискретизация интервалов сеткой с шагом cfg.StepMinutes, слот размером в услугу
//  3. Вычитание активных бронирований, расширенных буфером cfg.BufferMinutes
//  4. Отсечение слотов ближе cfg.LeadTimeMinutes от текущего момента (только сегодня)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: master=%d, service=%d, branch=%d, date=%s",
		req.MasterID, req.ServiceID, req.BranchID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	master, err := uc.salonClient.GetMaster(ctx, req.MasterID)
	if err != nil {
		if errors.Is(err, salonservice.ErrMasterNotFound) {
			uc.logger.Warn("GetAvailableSlots: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	if err := validateMaster(master, req.BranchID); err != nil {
		uc.logger.Warn("GetAvailableSlots: master id=%d validation failed: %v", req.MasterID, err)
		return nil, err
	}

	service, err := uc.salonClient.GetMasterService(ctx, req.MasterID, req.ServiceID)
	if err != nil {
		if errors.Is(err, salonservice.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found for master id=%d", req.ServiceID, req.MasterID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateService(service, master, req.BranchID); err != nil {
		uc.logger.Warn("GetAvailableSlots: service id=%d validation failed: %v", req.ServiceID, err)
		return nil, err
	}

	slots, err := uc.computeSlots(ctx, req, service.DurationMinutes, now)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: computed %d slots for master=%d, date=%s",
		len(slots), req.MasterID, req.Date.Format(domain.DateFormat))

	return &Response{
		MasterID:  req.MasterID,
		ServiceID: req.ServiceID,
		BranchID:  req.BranchID,
		Date:      req.Date,
		Slots:     slots,
	}, nil
}

// computeSlots выполняет шаги алгоритма после валидации сущностей
// Вынесен отдельно, чтобы create_booking мог повторить авторитетную проверку
// внутри сериализуемой транзакции через тот же код
func (uc *UseCase) computeSlots(ctx context.Context, req *Request, durationMinutes int, now time.Time) ([]domain.AvailableSlot, error) {
	schedule, err := uc.salonClient.GetSchedule(ctx, req.MasterID, req.BranchID)
	if err != nil {
		if errors.Is(err, salonservice.ErrScheduleNotFound) {
			// Нет расписания на филиале - нет и слотов; это не ошибка
			uc.logger.Info("GetAvailableSlots: no schedule for master=%d, branch=%d", req.MasterID, req.BranchID)
			return []domain.AvailableSlot{}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	week, exceptions, err := schedule.ToDomain()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: malformed schedule for master=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: malformed schedule: %v", ErrInternal, err)
	}

	open, err := resolveDayIntervals(week, exceptions, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve day intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve day intervals: %v", ErrInternal, err)
	}

	if len(open) == 0 {
		return []domain.AvailableSlot{}, nil
	}

	candidates := generateCandidates(open, durationMinutes, uc.cfg.StepMinutes)

	filter := domain.MasterBookingsFilter{
		MasterID:        ptr.Ptr(req.MasterID),
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	busy, err := bufferedBookings(bookings, uc.cfg.BufferMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to expand bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to expand bookings: %v", ErrInternal, err)
	}

	candidates = removeBusy(candidates, busy)
	candidates = applyLeadTime(candidates, req.Date, now, uc.cfg.LeadTimeMinutes)

	return toSlots(candidates), nil
}
