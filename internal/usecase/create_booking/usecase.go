package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	bookingStorage "github.com/jazyl-tech/JZL-BookingService/internal/infra/storage/booking"
	"github.com/jazyl-tech/JZL-BookingService/internal/integrations/salonservice"
	"github.com/jazyl-tech/JZL-BookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	salonClient  SalonServiceClient
	txManager    TransactionManager
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	salonClient SalonServiceClient,
	txManager TransactionManager,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		salonClient:  salonClient,
		txManager:    txManager,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и запись выполняются в сериализуемой транзакции:
// параллельные попытки занять один слот не могут пройти обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, master=%d, service=%d, branch=%d, date=%s, time=%s",
		req.ClientID, req.MasterID, req.ServiceID, req.BranchID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем мастера
	master, err := uc.salonClient.GetMaster(ctx, req.MasterID)
	if err != nil {
		if errors.Is(err, salonservice.ErrMasterNotFound) {
			uc.logger.Warn("CreateBooking: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("CreateBooking: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	if err := validateMaster(master, req.BranchID); err != nil {
		uc.logger.Warn("CreateBooking: master id=%d validation failed: %v", req.MasterID, err)
		return nil, err
	}

	// 5. Получаем услугу
	service, err := uc.salonClient.GetMasterService(ctx, req.MasterID, req.ServiceID)
	if err != nil {
		if errors.Is(err, salonservice.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found for master id=%d", req.ServiceID, req.MasterID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateService(service, master, req.BranchID); err != nil {
		uc.logger.Warn("CreateBooking: service id=%d validation failed: %v", req.ServiceID, err)
		return nil, err
	}

	// 6. Проверяем минимальное время упреждения
	if err := validateBookingTime(req.Date, req.StartTime, now, uc.cfg.LeadTimeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 7. Получаем расписание мастера и проверяем, что слот попадает в рабочие часы
	schedule, err := uc.salonClient.GetSchedule(ctx, req.MasterID, req.BranchID)
	if err != nil {
		if errors.Is(err, salonservice.ErrScheduleNotFound) {
			uc.logger.Warn("CreateBooking: no schedule for master=%d, branch=%d", req.MasterID, req.BranchID)
			return nil, ErrMasterNotWorking
		}
		uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	week, exceptions, err := schedule.ToDomain()
	if err != nil {
		uc.logger.Error("CreateBooking: malformed schedule for master=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: malformed schedule: %v", ErrInternal, err)
	}

	if err := validateSlotInSchedule(week, exceptions, req.Date, req.StartTime, service.DurationMinutes, uc.cfg.StepMinutes); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot extends past midnight: %v", err)
		return nil, fmt.Errorf("%w: slot extends past midnight", ErrInvalidTimeSlot)
	}

	var result *domain.Booking

	// 8. Проверка занятости и запись - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Активные бронирования мастера на дату с блокировкой (FOR UPDATE)
		filter := domain.MasterBookingsFilter{
			MasterID:        ptr.Ptr(req.MasterID),
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 8.2. Проверяем пересечение с учетом буфера
		if err := validateNoOverlap(bookings, req.StartTime, service.DurationMinutes, uc.cfg.BufferMinutes); err != nil {
			uc.logger.Warn("CreateBooking: slot not available for master=%d at %s %s",
				req.MasterID, req.Date.Format(domain.DateFormat), req.StartTime)
			return err
		}

		// 8.3. Создаем бронирование со снапшотом услуги
		booking := &domain.Booking{
			ClientID:        req.ClientID,
			SalonID:         master.SalonID,
			MasterID:        req.MasterID,
			BranchID:        req.BranchID,
			ServiceID:       req.ServiceID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			FinalPrice:      service.Price(),
			NotesFromClient: req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс (master_id, booking_date, start_time) - страховка
			// на случай обхода сериализуемой транзакции
			if errors.Is(err, bookingStorage.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot already taken for master=%d at %s %s",
					req.MasterID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		SalonID:         result.SalonID,
		MasterID:        result.MasterID,
		BranchID:        result.BranchID,
		ServiceID:       result.ServiceID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		FinalPrice:      result.FinalPrice,
		Notes:           result.NotesFromClient,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
