package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	bookingStorage "github.com/jazyl-tech/JZL-BookingService/internal/infra/storage/booking"
	"github.com/jazyl-tech/JZL-BookingService/internal/integrations/salonservice"
	"github.com/jazyl-tech/JZL-BookingService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// passthroughTxManager выполняет функцию без транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *booking
	created.ID = 42
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
}

func (s *stubBookingRepo) GetWithFilter(ctx context.Context, filter domain.MasterBookingsFilter) ([]*domain.Booking, error) {
	return s.existing, nil
}

type stubSalonClient struct {
	master      *salonservice.Master
	masterErr   error
	service     *salonservice.MasterService
	serviceErr  error
	schedule    *salonservice.Schedule
	scheduleErr error
}

func (s *stubSalonClient) GetMaster(ctx context.Context, masterID int64) (*salonservice.Master, error) {
	return s.master, s.masterErr
}

func (s *stubSalonClient) GetMasterService(ctx context.Context, masterID, serviceID int64) (*salonservice.MasterService, error) {
	return s.service, s.serviceErr
}

func (s *stubSalonClient) GetSchedule(ctx context.Context, masterID, branchID int64) (*salonservice.Schedule, error) {
	return s.schedule, s.scheduleErr
}

func strPtr(s string) *string { return &s }

func testClient() *stubSalonClient {
	customPrice := 1200.0
	return &stubSalonClient{
		master: &salonservice.Master{
			ID:        10,
			SalonID:   1,
			BranchIDs: []int64{100},
			IsActive:  true,
		},
		service: &salonservice.MasterService{
			ServiceID:       20,
			SalonID:         1,
			Name:            "Стрижка",
			DurationMinutes: 30,
			BasePrice:       1500,
			CustomPrice:     &customPrice,
			BranchIDs:       []int64{100},
			IsActive:        true,
		},
		schedule: &salonservice.Schedule{
			RegularSchedule: []salonservice.DaySchedule{
				{
					DayOfWeek: 1,
					IsWorking: true,
					StartTime: strPtr("09:00"),
					EndTime:   strPtr("18:00"),
					Breaks: []salonservice.Break{
						{BreakStart: "13:00", BreakEnd: "14:00"},
					},
				},
			},
		},
	}
}

func testRequest() *Request {
	return &Request{
		ClientID:  7,
		MasterID:  10,
		ServiceID: 20,
		BranchID:  100,
		Date:      monday,
		StartTime: types.TimeString("10:00"),
	}
}

func testConfig() Config {
	return Config{StepMinutes: 15, BufferMinutes: 5, LeadTimeMinutes: 60}
}

func newTestUseCase(repo *stubBookingRepo, client *stubSalonClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, client, passthroughTxManager{}, testConfig(), stubLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_Success(t *testing.T) {
	now := monday.AddDate(0, 0, -1)
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, testClient(), now)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("10:30"), resp.EndTime)
	assert.Equal(t, 30, resp.DurationMinutes)

	// Снапшот услуги: имя и действующая кастомная цена
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 1200.0, resp.FinalPrice)

	// SalonID берется у мастера, а не из запроса
	require.NotNil(t, repo.created)
	assert.Equal(t, int64(1), repo.created.SalonID)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestExecute_SlotConflict(t *testing.T) {
	now := monday.AddDate(0, 0, -1)
	repo := &stubBookingRepo{
		existing: []*domain.Booking{
			{
				ID:              1,
				MasterID:        10,
				StartTime:       types.TimeString("10:00"),
				DurationMinutes: 30,
				Status:          domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(repo, testClient(), now)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_AdjacentSlotWithinBufferRejected(t *testing.T) {
	now := monday.AddDate(0, 0, -1)
	repo := &stubBookingRepo{
		existing: []*domain.Booking{
			{
				ID:              1,
				MasterID:        10,
				StartTime:       types.TimeString("09:30"),
				DurationMinutes: 30,
				Status:          domain.StatusPending,
			},
		},
	}
	uc := newTestUseCase(repo, testClient(), now)

	// Слот 10:00 начинается сразу после брони 09:30-10:00: зазор меньше буфера
	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_UniqueViolationMapsToSlotNotAvailable(t *testing.T) {
	now := monday.AddDate(0, 0, -1)
	repo := &stubBookingRepo{createErr: bookingStorage.ErrSlotTaken}
	uc := newTestUseCase(repo, testClient(), now)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_TooLateToBookToday(t *testing.T) {
	// Сейчас понедельник 09:30, бронь на 10:00 - меньше часа упреждения
	now := time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&stubBookingRepo{}, testClient(), now)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_NoScheduleMeansMasterNotWorking(t *testing.T) {
	now := monday.AddDate(0, 0, -1)
	client := testClient()
	client.schedule = nil
	client.scheduleErr = salonservice.ErrScheduleNotFound
	uc := newTestUseCase(&stubBookingRepo{}, client, now)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrMasterNotWorking)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := monday.AddDate(0, 0, -1)

	tests := []struct {
		name    string
		mutate  func(req *Request, client *stubSalonClient)
		wantErr error
	}{
		{
			name:    "zero client id",
			mutate:  func(req *Request, client *stubSalonClient) { req.ClientID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "date in past",
			mutate:  func(req *Request, client *stubSalonClient) { req.Date = now.AddDate(0, 0, -1) },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "slot not aligned to grid",
			mutate:  func(req *Request, client *stubSalonClient) { req.StartTime = types.TimeString("10:05") },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "slot outside working hours",
			mutate:  func(req *Request, client *stubSalonClient) { req.StartTime = types.TimeString("19:00") },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name: "master not found",
			mutate: func(req *Request, client *stubSalonClient) {
				client.master = nil
				client.masterErr = salonservice.ErrMasterNotFound
			},
			wantErr: ErrMasterNotFound,
		},
		{
			name: "master not at branch",
			mutate: func(req *Request, client *stubSalonClient) {
				req.BranchID = 999
			},
			wantErr: ErrBranchNotFound,
		},
		{
			name: "foreign salon service",
			mutate: func(req *Request, client *stubSalonClient) {
				client.service.SalonID = 2
			},
			wantErr: ErrServiceNotFound,
		},
		{
			name: "service not at branch",
			mutate: func(req *Request, client *stubSalonClient) {
				client.service.BranchIDs = []int64{200}
			},
			wantErr: ErrServiceNotAtBranch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient()
			req := testRequest()
			tt.mutate(req, client)

			uc := newTestUseCase(&stubBookingRepo{}, client, now)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
