package salonservice

import (
	"fmt"
	"time"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	"github.com/jazyl-tech/JZL-BookingService/pkg/types"
)

// Salon модель салона из SalonService
type Salon struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ManagerIDs []int64 `json:"manager_ids"`
	IsActive   bool    `json:"is_active"`
}

// HasManager проверяет, что пользователь является менеджером салона
func (s *Salon) HasManager(userID int64) bool {
	for _, id := range s.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Master модель мастера из SalonService
type Master struct {
	ID        int64   `json:"id"`
	SalonID   int64   `json:"salon_id"`
	BranchIDs []int64 `json:"branch_ids"`
	IsActive  bool    `json:"is_active"`
}

// WorksAtBranch проверяет, что мастер принимает на указанном филиале
func (m *Master) WorksAtBranch(branchID int64) bool {
	for _, id := range m.BranchIDs {
		if id == branchID {
			return true
		}
	}
	return false
}

// MasterService услуга в исполнении конкретного мастера
// Кастомная цена мастера имеет приоритет над базовой ценой услуги
type MasterService struct {
	ServiceID       int64    `json:"service_id"`
	SalonID         int64    `json:"salon_id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	BasePrice       float64  `json:"base_price"`
	CustomPrice     *float64 `json:"custom_price,omitempty"`
	BranchIDs       []int64  `json:"branch_ids"`
	IsActive        bool     `json:"is_active"`
}

// Price возвращает действующую цену услуги у мастера
func (s *MasterService) Price() float64 {
	if s.CustomPrice != nil {
		return *s.CustomPrice
	}
	return s.BasePrice
}

// AvailableAtBranch проверяет, что услуга оказывается на указанном филиале
func (s *MasterService) AvailableAtBranch(branchID int64) bool {
	for _, id := range s.BranchIDs {
		if id == branchID {
			return true
		}
	}
	return false
}

// DaySchedule рабочий день в недельном расписании (wire-модель)
type DaySchedule struct {
	DayOfWeek int     `json:"day_of_week"` // 0-6, 0 = воскресенье
	IsWorking bool    `json:"is_working"`
	StartTime *string `json:"start_time,omitempty"` // "HH:MM"
	EndTime   *string `json:"end_time,omitempty"`
	Breaks    []Break `json:"breaks,omitempty"`
}

// Break перерыв внутри рабочего дня (wire-модель)
type Break struct {
	BreakStart string `json:"break_start"` // "HH:MM"
	BreakEnd   string `json:"break_end"`
}

// Exception исключение из расписания на конкретную дату (wire-модель)
type Exception struct {
	Date        string  `json:"exception_date"` // "YYYY-MM-DD"
	Type        string  `json:"exception_type"` // day_off | custom_hours | fully_booked
	CustomStart *string `json:"custom_start_time,omitempty"`
	CustomEnd   *string `json:"custom_end_time,omitempty"`
}

// Schedule расписание мастера на филиале: недельная сетка плюс исключения
type Schedule struct {
	RegularSchedule []DaySchedule `json:"regular_schedule"`
	Exceptions      []Exception   `json:"exceptions"`
}

// ToDomain конвертирует wire-модель расписания в доменные типы
func (s *Schedule) ToDomain() (domain.WeekSchedule, []domain.ScheduleException, error) {
	var week domain.WeekSchedule

	for _, day := range s.RegularSchedule {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			return week, nil, fmt.Errorf("%w: day_of_week=%d", ErrInvalidResponse, day.DayOfWeek)
		}
		if !day.IsWorking || day.StartTime == nil || day.EndTime == nil {
			continue
		}

		start, err := types.NewTimeStringFromString(*day.StartTime)
		if err != nil {
			return week, nil, fmt.Errorf("%w: start_time: %v", ErrInvalidResponse, err)
		}
		end, err := types.NewTimeStringFromString(*day.EndTime)
		if err != nil {
			return week, nil, fmt.Errorf("%w: end_time: %v", ErrInvalidResponse, err)
		}

		breaks := make([]domain.BreakInterval, 0, len(day.Breaks))
		for _, b := range day.Breaks {
			bs, err := types.NewTimeStringFromString(b.BreakStart)
			if err != nil {
				return week, nil, fmt.Errorf("%w: break_start: %v", ErrInvalidResponse, err)
			}
			be, err := types.NewTimeStringFromString(b.BreakEnd)
			if err != nil {
				return week, nil, fmt.Errorf("%w: break_end: %v", ErrInvalidResponse, err)
			}
			breaks = append(breaks, domain.BreakInterval{Start: bs, End: be})
		}

		week.Days[day.DayOfWeek] = domain.DaySchedule{
			IsWorking: true,
			StartTime: start,
			EndTime:   end,
			Breaks:    breaks,
		}
	}

	exceptions := make([]domain.ScheduleException, 0, len(s.Exceptions))
	for _, exc := range s.Exceptions {
		date, err := time.Parse(domain.DateFormat, exc.Date)
		if err != nil {
			return week, nil, fmt.Errorf("%w: exception_date: %v", ErrInvalidResponse, err)
		}

		converted := domain.ScheduleException{
			Date: date,
			Type: domain.ExceptionType(exc.Type),
		}

		if converted.Type == domain.ExceptionCustomHours {
			if exc.CustomStart == nil || exc.CustomEnd == nil {
				return week, nil, fmt.Errorf("%w: custom_hours exception without times", ErrInvalidResponse)
			}
			start, err := types.NewTimeStringFromString(*exc.CustomStart)
			if err != nil {
				return week, nil, fmt.Errorf("%w: custom_start_time: %v", ErrInvalidResponse, err)
			}
			end, err := types.NewTimeStringFromString(*exc.CustomEnd)
			if err != nil {
				return week, nil, fmt.Errorf("%w: custom_end_time: %v", ErrInvalidResponse, err)
			}
			converted.CustomStart = start
			converted.CustomEnd = end
		}

		exceptions = append(exceptions, converted)
	}

	return week, exceptions, nil
}

// ErrorResponse модель ошибки от SalonService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
