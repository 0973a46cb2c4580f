package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// DayTimeSlots возвращает сетку дня: 64 слота по 15 минут с 08:00 до 23:45
func DayTimeSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, SlotsPerDay)
	for i := 0; i < SlotsPerDay; i++ {
		slot, _ := types.NewTimeStringFromMinutes(DayStartMinutes + i*SlotMinutes)
		slots = append(slots, slot)
	}
	return slots
}

// IsGridSlot проверяет, что время совпадает с началом одного из слотов сетки
func IsGridSlot(t types.TimeString) bool {
	minutes, err := t.Minutes()
	if err != nil {
		return false
	}
	offset := minutes - DayStartMinutes
	return offset >= 0 && offset%SlotMinutes == 0 && offset/SlotMinutes < SlotsPerDay
}

// SlotsBetween возвращает слоты сетки, покрываемые интервалом [start, end)
func SlotsBetween(start, end types.TimeString) ([]types.TimeString, error) {
	from, err := start.Minutes()
	if err != nil {
		return nil, err
	}
	to, err := end.Minutes()
	if err != nil {
		return nil, err
	}

	// выравниваем начало вниз по сетке
	from -= ((from-DayStartMinutes)%SlotMinutes + SlotMinutes) % SlotMinutes

	slots := make([]types.TimeString, 0, (to-from)/SlotMinutes+1)
	for m := from; m < to; m += SlotMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// WeekDates возвращает даты недели (с понедельника), в которую входит date
func WeekDates(date time.Time) []time.Time {
	day := truncateDay(date)
	// в Go неделя начинается с воскресенья (0)
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)

	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// CurrentTimeOffset смещение индикатора текущего времени в минутах от 08:00
// Возвращает nil, если date не сегодня или время вне 08:00-20:00.
func CurrentTimeOffset(now, date time.Time) *int {
	if !SameDay(now, date) {
		return nil
	}

	minutes := now.Hour()*60 + now.Minute()
	if minutes < DayStartMinutes || minutes >= IndicatorEndMinute {
		return nil
	}

	offset := minutes - DayStartMinutes
	return &offset
}

// SameDay сравнивает календарные даты без учета времени
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysInclusive количество дней в периоде [from, to] включительно
func DaysInclusive(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	if t.Before(f) {
		return 0
	}
	return int(t.Sub(f).Hours()/24) + 1
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
