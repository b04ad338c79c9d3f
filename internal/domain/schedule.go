package domain

import (
	"time"

	"github.com/jazyl-tech/JZL-BookingService/pkg/types"
)

// BreakInterval перерыв внутри рабочего дня мастера
type BreakInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// DaySchedule рабочий день мастера в недельном расписании
type DaySchedule struct {
	IsWorking bool
	StartTime types.TimeString
	EndTime   types.TimeString
	Breaks    []BreakInterval
}

// WeekSchedule недельное расписание мастера на филиале
// Индексация по time.Weekday (0 = воскресенье)
type WeekSchedule struct {
	Days [7]DaySchedule
}

// ForDate возвращает рабочий день для указанной даты
func (w *WeekSchedule) ForDate(date time.Time) DaySchedule {
	return w.Days[int(date.Weekday())]
}

// ExceptionType тип исключения из недельного расписания
type ExceptionType string

const (
	ExceptionDayOff      ExceptionType = "day_off"
	ExceptionCustomHours ExceptionType = "custom_hours"
	ExceptionFullyBooked ExceptionType = "fully_booked"
)

// ScheduleException исключение на конкретную дату
// Имеет приоритет над недельным расписанием: либо полностью закрывает день,
// либо заменяет его рабочие интервалы на свои (без перерывов)
type ScheduleException struct {
	Date        time.Time
	Type        ExceptionType
	CustomStart types.TimeString
	CustomEnd   types.TimeString
	Reason      *string
}

// BlocksDay возвращает true, если исключение полностью закрывает день
func (e *ScheduleException) BlocksDay() bool {
	return e.Type == ExceptionDayOff || e.Type == ExceptionFullyBooked
}

// WorkInterval открытый рабочий интервал после вычитания перерывов
type WorkInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// AvailableSlot кандидат на бронирование: окно ровно под длительность услуги
type AvailableSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}
