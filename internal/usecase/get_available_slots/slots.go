package get_available_slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	"github.com/jazyl-tech/JZL-BookingService/pkg/types"
)

const minutesPerDay = 24 * 60

// interval полуоткрытый интервал [start, end) в минутах с начала суток
type interval struct {
	start int
	end   int
}

func (i interval) overlaps(other interval) bool {
	// Строгие неравенства: граничащие интервалы не пересекаются
	return i.start < other.end && other.start < i.end
}

// resolveDayIntervals возвращает рабочие интервалы мастера на дату
// Исключение на дату имеет приоритет над недельным расписанием:
// day_off/fully_booked закрывают день целиком, custom_hours заменяют
// рабочие интервалы на свои (перерывы при этом не действуют)
func resolveDayIntervals(
	week domain.WeekSchedule,
	exceptions []domain.ScheduleException,
	date time.Time,
) ([]interval, error) {
	for _, exc := range exceptions {
		if !isSameDay(exc.Date, date) {
			continue
		}
		if exc.BlocksDay() {
			return nil, nil
		}
		custom, err := toInterval(exc.CustomStart, exc.CustomEnd)
		if err != nil {
			return nil, err
		}
		return []interval{custom}, nil
	}

	day := week.ForDate(date)
	if !day.IsWorking {
		return nil, nil
	}

	work, err := toInterval(day.StartTime, day.EndTime)
	if err != nil {
		return nil, err
	}

	return subtractBreaks(work, day.Breaks)
}

// subtractBreaks вычитает перерывы из рабочего интервала,
// возвращая упорядоченные непересекающиеся открытые интервалы
func subtractBreaks(work interval, breaks []domain.BreakInterval) ([]interval, error) {
	parsed := make([]interval, 0, len(breaks))
	for _, b := range breaks {
		br, err := toInterval(b.Start, b.End)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, br)
	}

	sort.Slice(parsed, func(i, j int) bool { return parsed[i].start < parsed[j].start })

	result := make([]interval, 0, len(parsed)+1)
	cursor := work.start

	for _, br := range parsed {
		if br.end <= cursor || br.start >= work.end {
			continue
		}
		if br.start > cursor {
			result = append(result, interval{start: cursor, end: br.start})
		}
		if br.end > cursor {
			cursor = br.end
		}
	}

	if cursor < work.end {
		result = append(result, interval{start: cursor, end: work.end})
	}

	return result, nil
}

// generateCandidates дискретизирует открытые интервалы в кандидатов
// Кандидат валиден, только если услуга целиком помещается в интервал
func generateCandidates(open []interval, durationMinutes, stepMinutes int) []interval {
	candidates := make([]interval, 0)

	for _, in := range open {
		for start := in.start; start+durationMinutes <= in.end; start += stepMinutes {
			candidates = append(candidates, interval{start: start, end: start + durationMinutes})
		}
	}

	return candidates
}

// bufferedBookings расширяет активные бронирования буфером с обеих сторон
// Буфер гарантирует минимальный зазор между последовательными записями мастера
func bufferedBookings(bookings []*domain.Booking, bufferMinutes int) ([]interval, error) {
	busy := make([]interval, 0, len(bookings))

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		start, err := b.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("booking id=%d: invalid start_time: %w", b.ID, err)
		}
		end, err := b.EndTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("booking id=%d: invalid end_time: %w", b.ID, err)
		}

		start -= bufferMinutes
		if start < 0 {
			start = 0
		}
		end += bufferMinutes
		if end > minutesPerDay {
			end = minutesPerDay
		}

		busy = append(busy, interval{start: start, end: end})
	}

	return busy, nil
}

// removeBusy отбрасывает кандидатов, пересекающихся с занятыми интервалами
func removeBusy(candidates []interval, busy []interval) []interval {
	result := make([]interval, 0, len(candidates))

	for _, c := range candidates {
		blocked := false
		for _, b := range busy {
			if c.overlaps(b) {
				blocked = true
				break
			}
		}
		if !blocked {
			result = append(result, c)
		}
	}

	return result
}

// applyLeadTime отбрасывает слоты, начинающиеся раньше now + leadTimeMinutes
// Действует только когда запрошенная дата - сегодня
func applyLeadTime(candidates []interval, date, now time.Time, leadTimeMinutes int) []interval {
	if !isSameDay(date, now) {
		return candidates
	}

	earliest := now.Hour()*60 + now.Minute() + leadTimeMinutes

	result := make([]interval, 0, len(candidates))
	for _, c := range candidates {
		if c.start >= earliest {
			result = append(result, c)
		}
	}

	return result
}

// toSlots конвертирует интервалы-кандидаты в доменные слоты
func toSlots(candidates []interval) []domain.AvailableSlot {
	slots := make([]domain.AvailableSlot, len(candidates))
	for i, c := range candidates {
		slots[i] = domain.AvailableSlot{
			StartTime: minutesToTime(c.start),
			EndTime:   minutesToTime(c.end),
		}
	}
	return slots
}

func toInterval(start, end types.TimeString) (interval, error) {
	s, err := start.Minutes()
	if err != nil {
		return interval{}, err
	}
	e, err := end.Minutes()
	if err != nil {
		return interval{}, err
	}
	if s >= e {
		return interval{}, fmt.Errorf("invalid work interval %s-%s", start, end)
	}
	return interval{start: s, end: e}, nil
}

func minutesToTime(total int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
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
