package domain

import (
	"time"

	"github.com/jazyl-tech/JZL-BookingService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending"
	StatusConfirmed         BookingStatus = "confirmed"
	StatusInProgress        BookingStatus = "in_progress"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByClient BookingStatus = "cancelled_by_client"
	StatusCancelledBySalon  BookingStatus = "cancelled_by_salon"
)

// Booking запись клиента к мастеру
// Бронирования никогда не удаляются физически - только переводятся в терминальные статусы
type Booking struct {
	ID              int64
	ClientID        int64
	SalonID         int64
	MasterID        int64
	BranchID        int64 // филиал салона, в котором принимает мастер
	ServiceID       int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString // start_time + длительность услуги, фиксируется при создании
	DurationMinutes int
	Status          BookingStatus

	// Снапшот услуги на момент создания - переживает последующие правки каталога
	ServiceName string
	FinalPrice  float64

	NotesFromClient    *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если бронирование занимает слот в расписании мастера
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByClient && b.Status != StatusCancelledBySalon
}

// IsCancelled возвращает true, если бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByClient || b.Status == StatusCancelledBySalon
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// ValidTransition проверяет допустимость перехода статуса
// pending -> confirmed -> in_progress -> completed; отмена только из pending/confirmed
func (b *Booking) ValidTransition(to BookingStatus) bool {
	switch to {
	case StatusConfirmed:
		return b.Status == StatusPending
	case StatusInProgress:
		return b.Status == StatusConfirmed
	case StatusCompleted:
		return b.Status == StatusInProgress
	case StatusCancelledByClient, StatusCancelledBySalon:
		return b.CanBeCancelled()
	default:
		return false
	}
}

// MasterBookingsFilter фильтр для выборки бронирований мастера или салона
type MasterBookingsFilter struct {
	MasterID        *int64         // Фильтр по мастеру
	SalonID         *int64         // Фильтр по салону
	BranchID        *int64         // Фильтр по филиалу (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
