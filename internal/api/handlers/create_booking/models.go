package create_booking

import (
	"time"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	createBooking "github.com/jazyl-tech/JZL-BookingService/internal/usecase/create_booking"
	"github.com/jazyl-tech/JZL-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
// ID клиента берется из заголовка аутентификации, не из тела
type CreateBookingRequest struct {
	MasterID    int64   `json:"master_id"`
	ServiceID   int64   `json:"service_id"`
	BranchID    int64   `json:"branch_id"`
	BookingDate string  `json:"booking_date"` // "2026-03-15"
	StartTime   string  `json:"start_time"`   // "10:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"client_id"`
	SalonID         int64   `json:"salon_id"`
	MasterID        int64   `json:"master_id"`
	BranchID        int64   `json:"branch_id"`
	ServiceID       int64   `json:"service_id"`
	BookingDate     string  `json:"booking_date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"service_name"`
	FinalPrice      float64 `json:"final_price"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:  clientID,
		MasterID:  r.MasterID,
		ServiceID: r.ServiceID,
		BranchID:  r.BranchID,
		Date:      bookingDate,
		StartTime: startTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		SalonID:         resp.SalonID,
		MasterID:        resp.MasterID,
		BranchID:        resp.BranchID,
		ServiceID:       resp.ServiceID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.WithSeconds(),
		EndTime:         resp.EndTime.WithSeconds(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		FinalPrice:      resp.FinalPrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
