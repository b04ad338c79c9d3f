package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	"github.com/jazyl-tech/JZL-BookingService/pkg/types"
)

// monday 2026-09-07 приходится на понедельник
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func workWeek() domain.WeekSchedule {
	var week domain.WeekSchedule
	for d := time.Monday; d <= time.Friday; d++ {
		week.Days[int(d)] = domain.DaySchedule{
			IsWorking: true,
			StartTime: types.TimeString("09:00"),
			EndTime:   types.TimeString("18:00"),
			Breaks: []domain.BreakInterval{
				{Start: types.TimeString("13:00"), End: types.TimeString("14:00")},
			},
		}
	}
	return week
}

func TestResolveDayIntervals_RegularDay(t *testing.T) {
	week := workWeek()

	intervals, err := resolveDayIntervals(week, nil, monday)
	require.NoError(t, err)

	assert.Equal(t, []interval{
		{start: 540, end: 780},  // 09:00-13:00
		{start: 840, end: 1080}, // 14:00-18:00
	}, intervals)
}

func TestResolveDayIntervals_NonWorkingDay(t *testing.T) {
	week := workWeek()
	sunday := monday.AddDate(0, 0, -1)

	intervals, err := resolveDayIntervals(week, nil, sunday)
	require.NoError(t, err)
	assert.Empty(t, intervals)
}

func TestResolveDayIntervals_Exceptions(t *testing.T) {
	week := workWeek()

	tests := []struct {
		name string
		exc  domain.ScheduleException
		want []interval
	}{
		{
			name: "day_off closes the day",
			exc:  domain.ScheduleException{Date: monday, Type: domain.ExceptionDayOff},
			want: nil,
		},
		{
			name: "fully_booked closes the day",
			exc:  domain.ScheduleException{Date: monday, Type: domain.ExceptionFullyBooked},
			want: nil,
		},
		{
			name: "custom_hours replaces schedule and ignores breaks",
			exc: domain.ScheduleException{
				Date:        monday,
				Type:        domain.ExceptionCustomHours,
				CustomStart: types.TimeString("10:00"),
				CustomEnd:   types.TimeString("15:00"),
			},
			// единый интервал: перерыв 13:00-14:00 не применяется
			want: []interval{{start: 600, end: 900}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intervals, err := resolveDayIntervals(week, []domain.ScheduleException{tt.exc}, monday)
			require.NoError(t, err)
			assert.Equal(t, tt.want, intervals)
		})
	}
}

func TestResolveDayIntervals_ExceptionOtherDateIgnored(t *testing.T) {
	week := workWeek()
	exc := domain.ScheduleException{
		Date: monday.AddDate(0, 0, 1),
		Type: domain.ExceptionDayOff,
	}

	intervals, err := resolveDayIntervals(week, []domain.ScheduleException{exc}, monday)
	require.NoError(t, err)
	assert.Len(t, intervals, 2)
}

func TestSubtractBreaks(t *testing.T) {
	work := interval{start: 540, end: 1080} // 09:00-18:00

	tests := []struct {
		name   string
		breaks []domain.BreakInterval
		want   []interval
	}{
		{
			name:   "no breaks",
			breaks: nil,
			want:   []interval{{start: 540, end: 1080}},
		},
		{
			name: "single break splits the day",
			breaks: []domain.BreakInterval{
				{Start: types.TimeString("13:00"), End: types.TimeString("14:00")},
			},
			want: []interval{{start: 540, end: 780}, {start: 840, end: 1080}},
		},
		{
			name: "unsorted breaks are normalized",
			breaks: []domain.BreakInterval{
				{Start: types.TimeString("16:00"), End: types.TimeString("16:30")},
				{Start: types.TimeString("11:00"), End: types.TimeString("11:30")},
			},
			want: []interval{
				{start: 540, end: 660},
				{start: 690, end: 960},
				{start: 990, end: 1080},
			},
		},
		{
			name: "break touching the end of day",
			breaks: []domain.BreakInterval{
				{Start: types.TimeString("17:00"), End: types.TimeString("18:00")},
			},
			want: []interval{{start: 540, end: 1020}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := subtractBreaks(work, tt.breaks)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateCandidates(t *testing.T) {
	open := []interval{
		{start: 540, end: 780},  // 09:00-13:00
		{start: 840, end: 1080}, // 14:00-18:00
	}

	candidates := generateCandidates(open, 30, 15)

	// 09:00..12:30 каждые 15 минут = 15 слотов, 14:00..17:30 = 15 слотов
	require.Len(t, candidates, 30)
	assert.Equal(t, interval{start: 540, end: 570}, candidates[0])
	assert.Equal(t, interval{start: 750, end: 780}, candidates[14]) // 12:30-13:00
	assert.Equal(t, interval{start: 840, end: 870}, candidates[15]) // 14:00-14:30
	assert.Equal(t, interval{start: 1050, end: 1080}, candidates[29])
}

func TestGenerateCandidates_ServiceDoesNotFit(t *testing.T) {
	// 45-минутный интервал не вмещает 60-минутную услугу
	candidates := generateCandidates([]interval{{start: 540, end: 585}}, 60, 15)
	assert.Empty(t, candidates)
}

func TestBufferedBookings(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID:        1,
			StartTime: types.TimeString("10:00"),
			EndTime:   types.TimeString("10:30"),
			Status:    domain.StatusConfirmed,
		},
		{
			ID:        2,
			StartTime: types.TimeString("12:00"),
			EndTime:   types.TimeString("12:30"),
			Status:    domain.StatusCancelledByClient,
		},
	}

	busy, err := bufferedBookings(bookings, 5)
	require.NoError(t, err)

	// Отмененное бронирование слот не занимает
	require.Len(t, busy, 1)
	assert.Equal(t, interval{start: 595, end: 635}, busy[0]) // 09:55-10:35
}

func TestBufferedBookings_ClampedToDayBounds(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID:        1,
			StartTime: types.TimeString("00:00"),
			EndTime:   types.TimeString("00:30"),
			Status:    domain.StatusPending,
		},
		{
			ID:        2,
			StartTime: types.TimeString("23:30"),
			EndTime:   types.TimeString("23:59"),
			Status:    domain.StatusPending,
		},
	}

	busy, err := bufferedBookings(bookings, 10)
	require.NoError(t, err)
	require.Len(t, busy, 2)

	assert.Equal(t, 0, busy[0].start)
	assert.Equal(t, minutesPerDay, busy[1].end)
}

func TestRemoveBusy(t *testing.T) {
	candidates := []interval{
		{start: 540, end: 570}, // 09:00-09:30
		{start: 570, end: 600}, // 09:30-10:00
		{start: 600, end: 630}, // 10:00-10:30
		{start: 630, end: 660}, // 10:30-11:00
	}
	// Бронирование 10:00-10:30 с буфером 5 минут
	busy := []interval{{start: 595, end: 635}}

	free := removeBusy(candidates, busy)

	assert.Equal(t, []interval{
		{start: 540, end: 570},
	}, free)
}

func TestRemoveBusy_AdjacentNotBlocked(t *testing.T) {
	// Граничащие интервалы не считаются пересекающимися
	candidates := []interval{{start: 540, end: 570}}
	busy := []interval{{start: 570, end: 600}}

	free := removeBusy(candidates, busy)
	assert.Len(t, free, 1)
}

func TestApplyLeadTime(t *testing.T) {
	candidates := []interval{
		{start: 600, end: 630}, // 10:00
		{start: 660, end: 690}, // 11:00
		{start: 720, end: 750}, // 12:00
	}

	now := time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC)

	t.Run("same day filters early slots", func(t *testing.T) {
		// now + 60 минут = 11:30, слот 11:00 отбрасывается
		got := applyLeadTime(candidates, monday, now, 60)
		assert.Equal(t, []interval{{start: 720, end: 750}}, got)
	})

	t.Run("slot exactly at lead time boundary stays", func(t *testing.T) {
		// now + 30 минут = 11:00, слот 11:00 проходит
		got := applyLeadTime(candidates, monday, now, 30)
		assert.Len(t, got, 2)
	})

	t.Run("future date not filtered", func(t *testing.T) {
		tomorrow := monday.AddDate(0, 0, 1)
		got := applyLeadTime(candidates, tomorrow, now, 60)
		assert.Len(t, got, 3)
	})
}

func TestToSlots(t *testing.T) {
	slots := toSlots([]interval{{start: 540, end: 570}, {start: 1050, end: 1080}})

	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("17:30"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("18:00"), slots[1].EndTime)
}

func TestToInterval_InvalidRange(t *testing.T) {
	_, err := toInterval(types.TimeString("18:00"), types.TimeString("09:00"))
	assert.Error(t, err)
}
