package create_booking

import (
	"fmt"
	"time"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	"github.com/jazyl-tech/JZL-BookingService/internal/integrations/salonservice"
	"github.com/jazyl-tech/JZL-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.MasterID <= 0 {
		return fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateBookingTime проверяет минимальное время упреждения для бронирований на сегодня
func validateBookingTime(
	bookingDate time.Time,
	startTime types.TimeString,
	now time.Time,
	leadTimeMinutes int,
) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(leadTimeMinutes)
	if err != nil {
		return fmt.Errorf("%w: failed to calculate min allowed time: %v", ErrInternal, err)
	}

	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, leadTimeMinutes)
	}

	return nil
}

// validateMaster проверяет, что мастер активен и работает в указанном филиале
func validateMaster(master *salonservice.Master, branchID int64) error {
	if !master.IsActive {
		return ErrMasterNotFound
	}
	if !master.WorksAtBranch(branchID) {
		return ErrBranchNotFound
	}
	return nil
}

// validateService проверяет, что услуга активна, принадлежит салону мастера
// и доступна в указанном филиале
func validateService(service *salonservice.MasterService, master *salonservice.Master, branchID int64) error {
	if !service.IsActive || service.SalonID != master.SalonID {
		return ErrServiceNotFound
	}
	if !service.AvailableAtBranch(branchID) {
		return ErrServiceNotAtBranch
	}
	return nil
}

// validateSlotInSchedule проверяет, что запрошенный слот лежит внутри рабочего
// интервала мастера на дату и выровнен по сетке слотов
//
// Исключения на дату имеют приоритет над недельным расписанием: day_off и
// fully_booked закрывают день целиком, custom_hours заменяет интервалы дня
// на свои (без перерывов). Сетка привязана к началу открытого интервала.
func validateSlotInSchedule(
	week domain.WeekSchedule,
	exceptions []domain.ScheduleException,
	date time.Time,
	startTime types.TimeString,
	durationMinutes int,
	stepMinutes int,
) error {
	start, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end := start + durationMinutes

	open, err := openIntervalsForDate(week, exceptions, date)
	if err != nil {
		return fmt.Errorf("%w: malformed schedule: %v", ErrInternal, err)
	}

	if len(open) == 0 {
		return ErrMasterNotWorking
	}

	for _, iv := range open {
		if start < iv.start || end > iv.end {
			continue
		}
		if (start-iv.start)%stepMinutes != 0 {
			return fmt.Errorf("%w: start time is not aligned to %d-minute grid", ErrInvalidTimeSlot, stepMinutes)
		}
		return nil
	}

	return fmt.Errorf("%w: slot is outside working hours", ErrInvalidTimeSlot)
}

// validateNoOverlap проверяет, что слот не пересекается с активными бронированиями,
// расширенными буфером с обеих сторон
func validateNoOverlap(
	bookings []*domain.Booking,
	startTime types.TimeString,
	durationMinutes int,
	bufferMinutes int,
) error {
	start, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end := start + durationMinutes

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		busyStart, err := booking.StartTime.Minutes()
		if err != nil {
			continue
		}
		busyEnd := busyStart + booking.DurationMinutes

		busyStart -= bufferMinutes
		if busyStart < 0 {
			busyStart = 0
		}
		busyEnd += bufferMinutes
		if busyEnd > 24*60 {
			busyEnd = 24 * 60
		}

		// Строгие неравенства: соприкосновение границ не считается пересечением
		if start < busyEnd && busyStart < end {
			return ErrSlotNotAvailable
		}
	}

	return nil
}

// minuteInterval открытый рабочий интервал в минутах от полуночи
type minuteInterval struct {
	start int
	end   int
}

// openIntervalsForDate возвращает рабочие интервалы мастера на дату
// с учетом исключений и вычтенных перерывов
func openIntervalsForDate(
	week domain.WeekSchedule,
	exceptions []domain.ScheduleException,
	date time.Time,
) ([]minuteInterval, error) {
	for _, exc := range exceptions {
		if !isSameDay(exc.Date, date) {
			continue
		}
		if exc.BlocksDay() {
			return nil, nil
		}
		custom, err := toMinuteInterval(exc.CustomStart, exc.CustomEnd)
		if err != nil {
			return nil, err
		}
		return []minuteInterval{custom}, nil
	}

	day := week.ForDate(date)
	if !day.IsWorking {
		return nil, nil
	}

	work, err := toMinuteInterval(day.StartTime, day.EndTime)
	if err != nil {
		return nil, err
	}

	open := []minuteInterval{work}
	for _, b := range day.Breaks {
		br, err := toMinuteInterval(b.Start, b.End)
		if err != nil {
			return nil, err
		}
		open = cutInterval(open, br)
	}

	return open, nil
}

// cutInterval вычитает перерыв из каждого открытого интервала
func cutInterval(open []minuteInterval, br minuteInterval) []minuteInterval {
	result := make([]minuteInterval, 0, len(open)+1)
	for _, iv := range open {
		if br.end <= iv.start || br.start >= iv.end {
			result = append(result, iv)
			continue
		}
		if br.start > iv.start {
			result = append(result, minuteInterval{start: iv.start, end: br.start})
		}
		if br.end < iv.end {
			result = append(result, minuteInterval{start: br.end, end: iv.end})
		}
	}
	return result
}

func toMinuteInterval(start, end types.TimeString) (minuteInterval, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return minuteInterval{}, err
	}
	endMin, err := end.Minutes()
	if err != nil {
		return minuteInterval{}, err
	}
	if endMin <= startMin {
		return minuteInterval{}, fmt.Errorf("interval end %s is not after start %s", end, start)
	}
	return minuteInterval{start: startMin, end: endMin}, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
